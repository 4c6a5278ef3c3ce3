// Package render turns query result rows into embeddable HTML fragments.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Mode selects the markup shape of a rendered result
type Mode string

const (
	ModeSpan  Mode = "span"
	ModeDiv   Mode = "div"
	ModeUl    Mode = "ul"
	ModeOl    Mode = "ol"
	ModeTable Mode = "table"
	ModeJSON  Mode = "json"
	ModeCode  Mode = "code"
)

// ParseMode maps a mode name to a Mode; unknown names fall back to span.
func ParseMode(value string) Mode {
	switch value {
	case "div":
		return ModeDiv
	case "ul":
		return ModeUl
	case "ol":
		return ModeOl
	case "table":
		return ModeTable
	case "json":
		return ModeJSON
	case "code":
		return ModeCode
	default:
		return ModeSpan
	}
}

const emptyFragment = `<span class="text-gray-400 italic">No results</span>`

// Rows renders result rows as an HTML fragment. A single value renders
// bare whatever the mode; a single column renders as a flat list; wider
// results dispatch on the mode. Rows are rendered in the order given,
// complete and untruncated.
func Rows(rows []map[string]interface{}, columns []string, mode Mode) string {
	if len(rows) == 0 {
		return emptyFragment
	}

	display := columns
	if len(display) == 0 {
		display = columnsFromRows(rows)
	}

	if len(display) == 1 && len(rows) == 1 {
		return "<span>" + formatValue(rows[0][display[0]]) + "</span>"
	}
	if len(display) == 1 {
		return singleColumn(rows, display[0], mode)
	}

	switch mode {
	case ModeTable:
		return table(rows, display)
	case ModeJSON, ModeCode:
		return jsonBlock(rows)
	case ModeUl:
		return rowList(rows, "ul", "list-disc list-inside")
	case ModeOl:
		return rowList(rows, "ol", "list-decimal list-inside")
	default:
		return defaultRows(rows, display)
	}
}

// columnsFromRows derives display columns from the first row's keys, in
// sorted order so repeated renders stay stable.
func columnsFromRows(rows []map[string]interface{}) []string {
	cols := make([]string, 0, len(rows[0]))
	for k := range rows[0] {
		cols = append(cols, k)
	}
	sort.Strings(cols)
	return cols
}

func singleColumn(rows []map[string]interface{}, column string, mode Mode) string {
	switch mode {
	case ModeUl:
		return list("ul", "list-disc list-inside", columnValues(rows, column))
	case ModeOl:
		return list("ol", "list-decimal list-inside", columnValues(rows, column))
	case ModeJSON, ModeCode:
		values := make([]string, len(rows))
		for i, row := range rows {
			values[i] = rawValue(row[column])
		}
		return `<code class="font-mono text-xs sm:text-sm bg-black/40 text-green-400 p-2 sm:p-3 rounded block overflow-x-auto">` +
			escapeHTML(marshalJSON(values, true)) + "</code>"
	default:
		return "<span>" + strings.Join(columnValues(rows, column), ", ") + "</span>"
	}
}

func columnValues(rows []map[string]interface{}, column string) []string {
	values := make([]string, len(rows))
	for i, row := range rows {
		values[i] = formatValue(row[column])
	}
	return values
}

func table(rows []map[string]interface{}, columns []string) string {
	var b strings.Builder
	b.WriteString(`<div class="overflow-x-auto -mx-2 sm:mx-0"><table class="border-collapse border border-white/10 text-xs sm:text-sm w-full min-w-[400px]"><thead><tr class="bg-white/5">`)
	for _, col := range columns {
		b.WriteString(`<th class="border border-white/10 px-2 sm:px-3 py-1.5 sm:py-2 text-left font-semibold text-cyan-400 whitespace-nowrap">`)
		b.WriteString(escapeHTML(col))
		b.WriteString("</th>")
	}
	b.WriteString("</tr></thead><tbody>")
	for _, row := range rows {
		b.WriteString(`<tr class="hover:bg-white/5 transition-colors">`)
		for _, col := range columns {
			b.WriteString(`<td class="border border-white/10 px-2 sm:px-3 py-1.5 sm:py-2 text-slate-300 break-words max-w-[150px] sm:max-w-none">`)
			b.WriteString(formatValue(row[col]))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table></div>")
	return b.String()
}

func jsonBlock(rows []map[string]interface{}) string {
	return `<code class="font-mono text-xs sm:text-sm bg-black/40 text-green-400 p-2 sm:p-3 rounded block whitespace-pre overflow-x-auto">` +
		escapeHTML(marshalJSON(rows, true)) + "</code>"
}

// rowList renders each row as its compact JSON object, one list item per
// row.
func rowList(rows []map[string]interface{}, tag, class string) string {
	items := make([]string, len(rows))
	for i, row := range rows {
		items[i] = escapeHTML(marshalJSON(row, false))
	}
	return list(tag, class, items)
}

func list(tag, class string, items []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<%s class="%s">`, tag, class)
	for _, item := range items {
		b.WriteString("<li>")
		b.WriteString(item)
		b.WriteString("</li>")
	}
	fmt.Fprintf(&b, "</%s>", tag)
	return b.String()
}

func defaultRows(rows []map[string]interface{}, columns []string) string {
	var b strings.Builder
	b.WriteString("<div>")
	for _, row := range rows {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = formatValue(row[col])
		}
		b.WriteString("<div>")
		b.WriteString(strings.Join(cells, ", "))
		b.WriteString("</div>")
	}
	b.WriteString("</div>")
	return b.String()
}

// rawValue renders a scalar as plain text. Missing and null values render
// empty; numbers keep their shortest decimal form.
func rawValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

// formatValue renders a scalar for direct inclusion in markup. Data is
// escaped exactly once; the structural markup around it never is.
func formatValue(v interface{}) string {
	return escapeHTML(rawValue(v))
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// marshalJSON produces JSON with map keys sorted and HTML characters kept
// literal; the caller escapes the finished text.
func marshalJSON(v interface{}, pretty bool) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return ""
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
