package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/satishbabariya/classql/render"
)

func row(pairs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		m[pairs[i].(string)] = pairs[i+1]
	}
	return m
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, render.ModeTable, render.ParseMode("table"))
	assert.Equal(t, render.ModeUl, render.ParseMode("ul"))
	assert.Equal(t, render.ModeOl, render.ParseMode("ol"))
	assert.Equal(t, render.ModeJSON, render.ParseMode("json"))
	assert.Equal(t, render.ModeCode, render.ParseMode("code"))
	assert.Equal(t, render.ModeDiv, render.ParseMode("div"))
	assert.Equal(t, render.ModeSpan, render.ParseMode("span"))
	assert.Equal(t, render.ModeSpan, render.ParseMode("marquee"))
	assert.Equal(t, render.ModeSpan, render.ParseMode(""))
}

func TestRows_Empty(t *testing.T) {
	got := render.Rows(nil, nil, render.ModeTable)
	assert.Equal(t, `<span class="text-gray-400 italic">No results</span>`, got)

	// Same fragment whatever the mode.
	assert.Equal(t, got, render.Rows([]map[string]interface{}{}, []string{"name"}, render.ModeUl))
}

func TestRows_SingleValueRendersBare(t *testing.T) {
	rows := []map[string]interface{}{row("name", "Alice Johnson")}

	for _, mode := range []render.Mode{render.ModeSpan, render.ModeTable, render.ModeUl, render.ModeJSON} {
		got := render.Rows(rows, []string{"name"}, mode)
		assert.Equal(t, "<span>Alice Johnson</span>", got, "mode %s", mode)
	}
}

func TestRows_SingleColumnOrderedList(t *testing.T) {
	rows := []map[string]interface{}{
		row("title", "First"),
		row("title", "Second"),
		row("title", "Third"),
	}

	got := render.Rows(rows, []string{"title"}, render.ModeOl)
	assert.Equal(t,
		`<ol class="list-decimal list-inside"><li>First</li><li>Second</li><li>Third</li></ol>`,
		got)
}

func TestRows_SingleColumnUnorderedList(t *testing.T) {
	rows := []map[string]interface{}{
		row("title", "First"),
		row("title", "Second"),
	}

	got := render.Rows(rows, []string{"title"}, render.ModeUl)
	assert.Equal(t,
		`<ul class="list-disc list-inside"><li>First</li><li>Second</li></ul>`,
		got)
}

func TestRows_SingleColumnSpanJoinsValues(t *testing.T) {
	rows := []map[string]interface{}{
		row("name", "Alice"),
		row("name", "Bob"),
	}

	got := render.Rows(rows, []string{"name"}, render.ModeSpan)
	assert.Equal(t, "<span>Alice, Bob</span>", got)
}

func TestRows_TableHasHeaderAndCells(t *testing.T) {
	rows := []map[string]interface{}{
		row("id", int64(1), "name", "Alice"),
		row("id", int64(2), "name", "Bob"),
	}

	got := render.Rows(rows, []string{"id", "name"}, render.ModeTable)

	assert.Contains(t, got, "<table")
	assert.Contains(t, got, "<thead>")
	assert.Equal(t, 2, strings.Count(got, "<th "), "one header per column")
	assert.Equal(t, 2, strings.Count(got, "<tr class=\"hover:bg-white/5 transition-colors\">"), "one body row per result")
	assert.Contains(t, got, ">Alice</td>")
	assert.Contains(t, got, ">2</td>")
}

func TestRows_EscapesValuesExactlyOnce(t *testing.T) {
	rows := []map[string]interface{}{
		row("name", `<script>alert("x") & 'y'</script>`),
		row("name", "plain"),
	}

	got := render.Rows(rows, []string{"name"}, render.ModeUl)

	assert.NotContains(t, got, "<script>")
	assert.Contains(t, got, "&lt;script&gt;")
	assert.Contains(t, got, "&quot;x&quot;")
	assert.Contains(t, got, "&amp; &#x27;y&#x27;")
	assert.NotContains(t, got, "&amp;lt;", "double escaping")
	assert.NotContains(t, got, "&amp;quot;", "double escaping")
}

func TestRows_EscapesColumnNames(t *testing.T) {
	rows := []map[string]interface{}{
		row("a<b", int64(1), "c", int64(2)),
	}

	got := render.Rows(rows, []string{"a<b", "c"}, render.ModeTable)
	assert.Contains(t, got, "a&lt;b")
	assert.NotContains(t, got, ">a<b<")
}

func TestRows_ValueFormatting(t *testing.T) {
	rows := []map[string]interface{}{
		row("a", nil, "b", true, "c", int64(42), "d", 3.5, "e", "s"),
	}

	got := render.Rows(rows, []string{"a", "b", "c", "d", "e"}, render.ModeDiv)
	assert.Equal(t, "<div><div>, true, 42, 3.5, s</div></div>", got)
}

func TestRows_JSONMode(t *testing.T) {
	rows := []map[string]interface{}{
		row("id", int64(1), "name", "Alice"),
		row("id", int64(2), "name", "Bob"),
	}

	got := render.Rows(rows, []string{"id", "name"}, render.ModeJSON)

	assert.True(t, strings.HasPrefix(got, "<code "))
	assert.Contains(t, got, "&quot;name&quot;: &quot;Alice&quot;")
	assert.Contains(t, got, "&quot;id&quot;: 2")
}

func TestRows_MultiColumnListRendersRowObjects(t *testing.T) {
	rows := []map[string]interface{}{
		row("id", int64(1), "name", "Alice"),
	}

	got := render.Rows(rows, []string{"id", "name"}, render.ModeUl)
	assert.Equal(t,
		`<ul class="list-disc list-inside"><li>{&quot;id&quot;:1,&quot;name&quot;:&quot;Alice&quot;}</li></ul>`,
		got)
}

func TestRows_ColumnsDerivedFromRowKeys(t *testing.T) {
	rows := []map[string]interface{}{
		row("b", "two", "a", "one"),
	}

	// No display columns given: keys are used in sorted order.
	got := render.Rows(rows, nil, render.ModeDiv)
	assert.Equal(t, "<div><div>one, two</div></div>", got)
}

func TestRows_MissingCellRendersEmpty(t *testing.T) {
	rows := []map[string]interface{}{
		row("a", "x"),
		row("a", "y", "b", "z"),
	}

	got := render.Rows(rows, []string{"a", "b"}, render.ModeDiv)
	assert.Equal(t, "<div><div>x, </div><div>y, z</div></div>", got)
}
