package reconcile

import (
	"testing"
	"time"
)

func TestDecide(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Minute)

	tests := []struct {
		name           string
		fileExists     bool
		fileModTime    time.Time
		recordExists   bool
		recordLastSave time.Time
		want           Action
	}{
		{"file only creates record", true, t0, false, time.Time{}, ActionPushFileToStore},
		{"record only materializes file", false, time.Time{}, true, t0, ActionPushStoreToFile},
		{"neither side is a no-op", false, time.Time{}, false, time.Time{}, ActionNone},
		{"newer file wins", true, t1, true, t0, ActionPushFileToStore},
		{"newer record wins", true, t0, true, t1, ActionPushStoreToFile},
		{"tie goes to the store", true, t0, true, t0, ActionPushStoreToFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.fileExists, tt.fileModTime, tt.recordExists, tt.recordLastSave)
			if got != tt.want {
				t.Errorf("Decide() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionPushFileToStore.String() == ActionPushStoreToFile.String() {
		t.Error("actions must stringify distinctly")
	}
	if ActionNone.String() != "no-op" {
		t.Errorf("unexpected no-op string %q", ActionNone.String())
	}
}
