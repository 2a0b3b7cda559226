package playerid

import "testing"

func TestValid(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"76561198000000001", true},
		{"12345678901234567", true},
		{"7656119800000000", false},   // 16 digits
		{"765611980000000012", false}, // 18 digits
		{"7656119800000000x", false},
		{"ServerSettings", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := Valid(tt.id); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestIsSettings(t *testing.T) {
	if !IsSettings("ServerSettings") {
		t.Error("exact sentinel should match")
	}
	if !IsSettings("serversettings") {
		t.Error("sentinel match must ignore case")
	}
	if !IsSettings("SERVERSETTINGS") {
		t.Error("sentinel match must ignore case")
	}
	if IsSettings("76561198000000001") {
		t.Error("ordinary ID should not match the sentinel")
	}
}

func TestFromFilename(t *testing.T) {
	tests := []struct {
		name   string
		wantID string
		wantOK bool
	}{
		{"76561198000000001.json", "76561198000000001", true},
		{"76561198000000001.JSON", "76561198000000001", true},
		{"ServerSettings.json", "", false},
		{"serversettings.json", "", false},
		{"notes.txt", "", false},
		{"notes.json", "", false},
		{".json", "", false},
		{"76561198000000001", "", false},
	}

	for _, tt := range tests {
		id, ok := FromFilename(tt.name)
		if ok != tt.wantOK || id != tt.wantID {
			t.Errorf("FromFilename(%q) = (%q, %v), want (%q, %v)", tt.name, id, ok, tt.wantID, tt.wantOK)
		}
	}
}

func TestFilename(t *testing.T) {
	if got := Filename("76561198000000001"); got != "76561198000000001.json" {
		t.Errorf("unexpected filename %q", got)
	}
}
