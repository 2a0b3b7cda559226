// Package playerid holds the ID rules shared by the file and store sides.
package playerid

import (
	"regexp"
	"strings"
)

// SettingsID is the reserved sentinel record used for the one-way
// store-to-file settings push. It is never reconciled like a player.
const SettingsID = "ServerSettings"

// FileExt is the extension of per-player documents in the data directory.
const FileExt = ".json"

// Player IDs are 17-digit numeric platform identifiers.
var idPattern = regexp.MustCompile(`^[0-9]{17}$`)

// Valid reports whether id has the expected numeric platform-ID shape.
func Valid(id string) bool {
	return idPattern.MatchString(id)
}

// IsSettings reports whether id names the settings sentinel, ignoring case.
func IsSettings(id string) bool {
	return strings.EqualFold(id, SettingsID)
}

// FromFilename derives a player ID from a file name. It returns false for
// names without the .json extension, for the reserved settings file, and for
// basenames that are not valid player IDs.
func FromFilename(name string) (string, bool) {
	if len(name) <= len(FileExt) || !strings.EqualFold(name[len(name)-len(FileExt):], FileExt) {
		return "", false
	}
	id := name[:len(name)-len(FileExt)]
	if IsSettings(id) || !Valid(id) {
		return "", false
	}
	return id, true
}

// Filename returns the data-directory file name for a player ID.
func Filename(id string) string {
	return id + FileExt
}
