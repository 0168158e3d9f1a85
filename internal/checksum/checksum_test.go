package checksum

import "testing"

func TestContent(t *testing.T) {
	a := Content([]byte("shapes: []\n"))
	b := Content([]byte("shapes: []\n"))
	c := Content([]byte("shapes: [] \n"))

	if len(a) != 8 {
		t.Errorf("Expected 8 characters, got %d (%s)", len(a), a)
	}
	if a != b {
		t.Errorf("Expected identical content to match, got %s and %s", a, b)
	}
	if a == c {
		t.Errorf("Expected different content to differ, both %s", a)
	}
	// FNV-1a offset basis
	if got := Content(nil); got != "811c9dc5" {
		t.Errorf("Expected '811c9dc5', got '%s'", got)
	}
}
