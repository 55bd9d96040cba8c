package main

import "testing"

func TestParseFreqs(t *testing.T) {
	got, err := parseFreqs(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(defaultFreqs) {
		t.Fatalf("default list has %d entries, want %d", len(got), len(defaultFreqs))
	}

	got, err = parseFreqs([]string{"50", "62.5"})
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != 50 || got[1] != 62.5 {
		t.Fatalf("got %v", got)
	}

	if _, err := parseFreqs([]string{"fifty"}); err == nil {
		t.Fatal("expected error for non-numeric frequency")
	}
}
