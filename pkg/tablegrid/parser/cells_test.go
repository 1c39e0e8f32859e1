package parser

import "testing"

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		result := ParseValue(tt.input)
		if result != tt.expected {
			t.Errorf("ParseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestNormalizeSpace(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  a  b\n c ", "a b c"},
		{"", ""},
		{"\t", ""},
	}

	for _, tt := range tests {
		if result := normalizeSpace(tt.input); result != tt.expected {
			t.Errorf("normalizeSpace(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		input    string
		expected Area
		ok       bool
	}{
		{"$A$1:$D$10", Area{R1: 1, C1: 1, R2: 10, C2: 4}, true},
		{"B2", Area{R1: 2, C1: 2, R2: 2, C2: 2}, true},
		{"C3:A1", Area{R1: 1, C1: 1, R2: 3, C2: 3}, true},
		{"nope", Area{}, false},
	}

	for _, tt := range tests {
		result, ok := ParseRange(tt.input)
		if ok != tt.ok || result != tt.expected {
			t.Errorf("ParseRange(%q) = %v, %v, expected %v, %v", tt.input, result, ok, tt.expected, tt.ok)
		}
	}
}

func TestParsePrintAreaReference(t *testing.T) {
	sheet, areas := parsePrintAreaReference("'My Sheet'!$A$1:$B$2,'My Sheet'!$D$4:$E$5")
	if sheet != "My Sheet" {
		t.Errorf("sheet = %q, expected %q", sheet, "My Sheet")
	}
	if len(areas) != 2 {
		t.Fatalf("Expected 2 areas, got %d", len(areas))
	}
	if areas[1] != (Area{R1: 4, C1: 4, R2: 5, C2: 5}) {
		t.Errorf("areas[1] = %v", areas[1])
	}
}

func TestAreaClipAndRef(t *testing.T) {
	a := Area{R1: 1, C1: 1, R2: 3, C2: 3}
	clipped, ok := a.Clip(Area{R1: 2, C1: 2, R2: 5, C2: 5})
	if !ok || clipped != (Area{R1: 2, C1: 2, R2: 3, C2: 3}) {
		t.Errorf("Clip = %v, %v", clipped, ok)
	}
	if _, ok := a.Clip(Area{R1: 4, C1: 4, R2: 5, C2: 5}); ok {
		t.Error("Expected disjoint areas to clip to nothing")
	}
	if ref := clipped.Ref(); ref != "B2:C3" {
		t.Errorf("Ref() = %q, expected %q", ref, "B2:C3")
	}
}

func TestDetectTables(t *testing.T) {
	rows := [][]string{
		{},
		{"", "a", "b"},
		{"", "c"},
	}
	areas := DetectTables(rows, []Area{{R1: 3, C1: 3, R2: 4, C2: 3}}, DefaultTableParams())
	if len(areas) != 1 {
		t.Fatalf("Expected 1 area, got %d", len(areas))
	}
	if areas[0] != (Area{R1: 2, C1: 2, R2: 4, C2: 3}) {
		t.Errorf("area = %v", areas[0])
	}

	if got := DetectTables([][]string{{"x"}}, nil, DefaultTableParams()); got != nil {
		t.Errorf("Expected sparse sheet to yield nothing, got %v", got)
	}
	if got := DetectTables(nil, nil, DefaultTableParams()); got != nil {
		t.Errorf("Expected empty sheet to yield nothing, got %v", got)
	}
}
