package main

import (
	"testing"
)

func TestParseSpan(t *testing.T) {
	tests := []struct {
		input string
		at    int
		count int
		ok    bool
	}{
		{"2", 2, 1, true},
		{"0:3", 0, 3, true},
		{"4:0", 4, 0, true},
		{"-1", 0, 0, false},
		{"x:2", 0, 0, false},
		{"1:y", 0, 0, false},
		{"1:-2", 0, 0, false},
	}

	for _, tt := range tests {
		at, count, err := parseSpan(tt.input)
		if (err == nil) != tt.ok {
			t.Errorf("parseSpan(%q) error = %v, expected ok=%v", tt.input, err, tt.ok)
			continue
		}
		if at != tt.at || count != tt.count {
			t.Errorf("parseSpan(%q) = %d, %d, expected %d, %d", tt.input, at, count, tt.at, tt.count)
		}
	}
}

func TestParseEdits(t *testing.T) {
	insertRows = []string{"1:2"}
	insertColumns = nil
	removeRows = []string{"0"}
	removeColumns = []string{"3:1"}
	t.Cleanup(func() { insertRows, removeRows, removeColumns = nil, nil, nil })

	edits, err := parseEdits()
	if err != nil {
		t.Fatalf("parseEdits failed: %v", err)
	}
	want := []struct {
		flag      string
		at, count int
	}{
		{"--insert-row", 1, 2},
		{"--remove-row", 0, 1},
		{"--remove-column", 3, 1},
	}
	if len(edits) != len(want) {
		t.Fatalf("Expected %d edits, got %d", len(want), len(edits))
	}
	for i, w := range want {
		if edits[i].flag != w.flag || edits[i].at != w.at || edits[i].count != w.count {
			t.Errorf("edits[%d] = %s %d:%d, expected %s %d:%d",
				i, edits[i].flag, edits[i].at, edits[i].count, w.flag, w.at, w.count)
		}
	}

	removeRows = []string{"bad"}
	if _, err := parseEdits(); err == nil {
		t.Error("Expected an error for an invalid --remove-row value")
	}
}
