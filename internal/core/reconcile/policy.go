// Package reconcile holds the pure decision logic of the sync engine:
// the file-vs-record freshness policy and the counter merge rule.
package reconcile

import "time"

// Action is the outcome of the freshness comparison for one player.
type Action int

const (
	// ActionNone means neither side has state for the player.
	ActionNone Action = iota

	// ActionPushFileToStore overwrites (or creates) the store row from the file.
	ActionPushFileToStore

	// ActionPushStoreToFile overwrites (or creates) the file from the store row.
	ActionPushStoreToFile
)

func (a Action) String() string {
	switch a {
	case ActionPushFileToStore:
		return "push file to store"
	case ActionPushStoreToFile:
		return "push store to file"
	default:
		return "no-op"
	}
}

// Decide applies the freshness policy. The file wins only when it is
// strictly newer than the store row; on a tie the store wins, so equality
// is never special-cased.
func Decide(fileExists bool, fileModTime time.Time, recordExists bool, recordLastSave time.Time) Action {
	switch {
	case fileExists && !recordExists:
		return ActionPushFileToStore
	case !fileExists && recordExists:
		return ActionPushStoreToFile
	case !fileExists && !recordExists:
		return ActionNone
	case fileModTime.After(recordLastSave):
		return ActionPushFileToStore
	default:
		return ActionPushStoreToFile
	}
}
