package theme

import "testing"

func TestUrgencyColor_AlwaysReturnsAColor(t *testing.T) {
	levels := []string{"emergency", "high", "moderate", "low", "", "unknown"}
	for _, level := range levels {
		if UrgencyColor(level) == nil {
			t.Errorf("UrgencyColor(%q) = nil, want a color", level)
		}
	}
}

func TestUrgencyColor_EmergencyStandsOut(t *testing.T) {
	if UrgencyColor("emergency") == UrgencyColor("low") {
		t.Error("emergency and low must map to distinct colors")
	}
}
