package handlers

import (
	"testing"
)

func TestParseIntArray(t *testing.T) {
	got := parseIntArray("1, 2,junk,,3")
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("unexpected result: %#v", got)
	}
	if parseIntArray("") != nil {
		t.Fatal("empty input must yield nil")
	}
}

func TestParseStringArray(t *testing.T) {
	got := parseStringArray("new, used,,for_parts")
	if len(got) != 3 || got[0] != "new" || got[1] != "used" || got[2] != "for_parts" {
		t.Fatalf("unexpected result: %#v", got)
	}
	if parseStringArray("") != nil {
		t.Fatal("empty input must yield nil")
	}
}
