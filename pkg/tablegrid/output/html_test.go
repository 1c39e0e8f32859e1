package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/gridsync/pkg/tablegrid/parser"
)

func TestRenderHTML(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, RenderHTML(&sb, []Table{salesTable()}))

	want := `<table><caption>Sales</caption>` +
		`<thead><tr><th colspan="2">Region</th><th>Total</th></tr></thead>` +
		`<tbody><tr><th rowspan="2">North</th><td>Q1</td><td>10</td></tr>` +
		`<tr><td>Q2</td><td>20</td></tr></tbody></table>` + "\n"
	assert.Equal(t, want, sb.String())
}

func TestRenderHTMLRoundTrip(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, RenderHTML(&sb, []Table{salesTable()}))

	sources, err := parser.ReadHTML(strings.NewReader(sb.String()))
	require.NoError(t, err)
	require.Len(t, sources, 1)

	got := sources[0].Table
	assert.Equal(t, "Sales", sources[0].Name)
	assert.Equal(t, 1, got.HeadingRows())
	assert.Equal(t, 1, got.HeadingColumns())
	assert.Equal(t, 3, got.RowCount())
	assert.Equal(t, 2, got.Row(1).Cells()[0].RowSpan())
}

func TestRenderHTMLEscapesContent(t *testing.T) {
	tbl := salesTable()
	tbl.Name = "a<b"
	tbl.View.Source.Row(2).Cells()[0].Content = "x & y"

	var sb strings.Builder
	require.NoError(t, RenderHTML(&sb, []Table{tbl}))
	assert.Contains(t, sb.String(), "<caption>a&lt;b</caption>")
	assert.Contains(t, sb.String(), "<td>x &amp; y</td>")
}
