package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/gridsync/pkg/tablegrid/model"
)

func TestWalkPlainTable(t *testing.T) {
	table := model.NewTable(0, 0, row("a", "b"), row("c", "d"))

	want := []pos{
		{0, 0, 1, 1, "a"},
		{0, 1, 1, 1, "b"},
		{1, 0, 1, 1, "c"},
		{1, 1, 1, 1, "d"},
	}
	if diff := cmp.Diff(want, positions(table)); diff != "" {
		t.Errorf("walk mismatch (-want +got):\n%s", diff)
	}
	for s := range Walk(table) {
		assert.False(t, IsHeaderCell(s.Row, s.Column, table.HeadingRows(), table.HeadingColumns()))
	}
}

func TestWalkSkipsRowspan(t *testing.T) {
	tall := model.NewSpanCell("tall", 2, 1)
	below := model.NewCell("below")
	table := model.NewTable(0, 0,
		model.NewRow(tall, model.NewCell("top")),
		model.NewRow(below),
	)

	var got []Slot
	for s := range WalkRow(table, 1) {
		got = append(got, s)
	}
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Row)
	assert.Equal(t, 1, got[0].Column)
	assert.Same(t, below, got[0].Cell)
}

func TestWalkAdjacentSpans(t *testing.T) {
	table := model.NewTable(0, 0,
		model.NewRow(
			model.NewSpanCell("a", 3, 1),
			model.NewSpanCell("b", 2, 2),
			model.NewCell("c"),
		),
		row("d"),
		model.NewRow(model.NewSpanCell("e", 1, 2), model.NewCell("f")),
	)

	want := []pos{
		{0, 0, 3, 1, "a"},
		{0, 1, 2, 2, "b"},
		{0, 3, 1, 1, "c"},
		{1, 3, 1, 1, "d"},
		{2, 1, 1, 2, "e"},
		{2, 3, 1, 1, "f"},
	}
	if diff := cmp.Diff(want, positions(table)); diff != "" {
		t.Errorf("walk mismatch (-want +got):\n%s", diff)
	}
	requireValid(t, table)
}

func TestWalkIsRestartable(t *testing.T) {
	table := model.NewTable(1, 1,
		model.NewRow(model.NewSpanCell("a", 2, 2), model.NewCell("b")),
		row("c"),
		row("d", "e", "f"),
	)
	seq := Walk(table)

	var first, second []pos
	for s := range seq {
		first = append(first, pos{s.Row, s.Column, s.RowSpan, s.ColSpan, s.Cell.Content})
	}
	for s := range seq {
		second = append(second, pos{s.Row, s.Column, s.RowSpan, s.ColSpan, s.Cell.Content})
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second walk differs (-first +second):\n%s", diff)
	}
}

func TestWalkRowStopsEarly(t *testing.T) {
	table := model.NewTable(0, 0, row("a"), row("b"), row("c"))
	var got []string
	for s := range WalkRow(table, 1) {
		got = append(got, s.Cell.Content)
	}
	assert.Equal(t, []string{"b"}, got)

	for range WalkRow(table, 5) {
		t.Fatal("no slot expected past the last row")
	}
}

func TestWalkToleratesSpansPastTable(t *testing.T) {
	table := model.NewTable(0, 0, model.NewRow(model.NewSpanCell("a", 4, 1), model.NewCell("b")))
	assert.Len(t, Slots(table), 2)
	assert.Error(t, Validate(table))
}

func TestSlotOf(t *testing.T) {
	target := model.NewCell("x")
	table := model.NewTable(0, 0,
		model.NewRow(model.NewSpanCell("a", 2, 1), model.NewCell("b")),
		model.NewRow(target),
	)
	s, ok := SlotOf(table, target)
	require.True(t, ok)
	assert.Equal(t, 1, s.Row)
	assert.Equal(t, 1, s.Column)

	_, ok = SlotOf(table, model.NewCell("detached"))
	assert.False(t, ok)
}

func TestWidthAndDense(t *testing.T) {
	a := model.NewSpanCell("a", 2, 2)
	table := model.NewTable(0, 0,
		model.NewRow(a, model.NewCell("b")),
		row("c"),
	)
	assert.Equal(t, 3, Width(table))
	assert.Equal(t, 0, Width(model.NewTable(0, 0)))

	dense := Dense(table)
	require.Len(t, dense, 2)
	for r := 0; r < 2; r++ {
		require.Len(t, dense[r], 3)
		assert.Same(t, a, dense[r][0].Cell)
		assert.Same(t, a, dense[r][1].Cell)
	}
	assert.Equal(t, "c", dense[1][2].Cell.Content)
	assert.True(t, dense[1][1].Covers(1, 1))
}

// Every grid row must be covered exactly once over [0, W).
func TestGridCoverage(t *testing.T) {
	tables := []*model.Table{
		model.NewTable(0, 0, row("a", "b"), row("c", "d")),
		model.NewTable(0, 0,
			model.NewRow(model.NewSpanCell("a", 3, 1), model.NewSpanCell("b", 1, 2)),
			model.NewRow(model.NewCell("c"), model.NewSpanCell("d", 2, 1)),
			row("e"),
		),
		model.NewTable(0, 0,
			model.NewRow(model.NewSpanCell("a", 2, 3)),
			row(),
			row("x", "y", "z"),
		),
	}
	for i, table := range tables {
		w := Width(table)
		for r, cols := range Dense(table) {
			covered := 0
			for _, s := range cols {
				if s.Cell != nil {
					covered++
				}
			}
			assert.Equal(t, w, covered, "table %d row %d", i, r)
		}
		assert.NoError(t, Validate(table), "table %d", i)
	}
}
