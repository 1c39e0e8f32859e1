package grid

import "testing"

func TestSpanTrackerAdjust(t *testing.T) {
	st := NewSpanTracker()
	st.Record(0, 0, 3, 1)
	st.Record(0, 1, 2, 2)
	st.Record(0, 3, 1, 5) // one row high: nothing to record

	tests := []struct {
		row, column int
		expected    int
	}{
		{0, 0, 0},
		{1, 0, 3}, // two adjacent spans are skipped
		{1, 3, 3},
		{2, 0, 1},
		{2, 1, 1},
		{3, 0, 0},
		{7, 4, 4},
	}

	for _, tt := range tests {
		result := st.Adjust(tt.row, tt.column)
		if result != tt.expected {
			t.Errorf("Adjust(%d, %d) = %d, expected %d", tt.row, tt.column, result, tt.expected)
		}
	}
}

func TestSpanTrackerRecordSingleRow(t *testing.T) {
	st := NewSpanTracker()
	st.Record(4, 2, 1, 3)
	if got := st.rows[5]; len(got) != 0 {
		t.Errorf("expected no spans for row 5, got %v", got)
	}
	if got := st.Adjust(5, 2); got != 2 {
		t.Errorf("Adjust(5, 2) = %d, expected 2", got)
	}
}
