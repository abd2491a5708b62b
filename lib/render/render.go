package render

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"noteboard-backend/lib/textutil"
)

// Mode selects the projection used for a sequence of records.
type Mode int

const (
	// ModeTable renders one row per record under the union of all keys.
	ModeTable Mode = iota
	// ModeCards renders one block per record with only its own keys.
	ModeCards
	// ModeRaw renders a verbatim pretty-printed dump of the input.
	ModeRaw
)

// NoData is the fragment returned whenever there is nothing to render.
const NoData = `<div class="no-data">No data available</div>`

// FormatValue classifies a value and renders it as an HTML fragment.
// Text is escaped; URL values become navigable anchors.
func FormatValue(value any) string {
	c := Classify(value)
	switch c.Kind {
	case KindNull:
		return `<span class="null-value">N/A</span>`
	case KindBool:
		return fmt.Sprintf(`<span class="boolean-value %s">%s</span>`, c.Display, c.Display)
	case KindNumber:
		return fmt.Sprintf(`<span class="number-value">%s</span>`, c.Display)
	case KindDate:
		return fmt.Sprintf(`<span class="date-value">%s</span>`, html.EscapeString(c.Display))
	case KindURL:
		escaped := html.EscapeString(c.Display)
		return fmt.Sprintf(`<a href="%s" target="_blank" class="url-value">%s</a>`, escaped, escaped)
	case KindNested:
		return fmt.Sprintf(`<pre class="object-value">%s</pre>`, html.EscapeString(c.Display))
	}
	return fmt.Sprintf(`<span class="string-value">%s</span>`, html.EscapeString(c.Display))
}

// Records renders a sequence of records in the given mode. An empty or
// nil sequence yields the NoData fragment, never an error.
func Records(records []Record, mode Mode, title string) string {
	if len(records) == 0 {
		return NoData
	}
	switch mode {
	case ModeCards:
		return renderCards(records)
	case ModeRaw:
		return Raw(records)
	default:
		return renderTable(records, title)
	}
}

// Single renders one record as a titled key/value list. This is the
// shape used regardless of mode when the input is a lone object rather
// than a sequence.
func Single(record Record, title string) string {
	if len(record) == 0 {
		return NoData
	}

	var b strings.Builder
	b.WriteString(`<div class="record-display">`)
	fmt.Fprintf(&b, `<h3 class="record-title">%s</h3>`, html.EscapeString(title))
	b.WriteString(`<div class="record-object">`)
	for _, f := range record {
		b.WriteString(`<div class="record-property">`)
		fmt.Fprintf(&b, `<span class="record-key">%s:</span>`, html.EscapeString(textutil.FormatKey(f.Key)))
		fmt.Fprintf(&b, `<span class="record-value">%s</span>`, FormatValue(f.Value))
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div></div>`)
	return b.String()
}

// Raw pretty-prints the input without classification. Parsing the
// output back yields a structure deep-equal to the input.
func Raw(records []Record) string {
	dump, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return NoData
	}
	return fmt.Sprintf(`<pre class="record-raw">%s</pre>`, html.EscapeString(string(dump)))
}

// unionKeys returns every key seen across the sequence in first-seen
// order (discovery order over the whole sequence, not sorted).
func unionKeys(records []Record) []string {
	seen := map[string]bool{}
	var keys []string
	for _, r := range records {
		for _, f := range r {
			if seen[f.Key] {
				continue
			}
			seen[f.Key] = true
			keys = append(keys, f.Key)
		}
	}
	return keys
}

func renderTable(records []Record, title string) string {
	keys := unionKeys(records)

	var b strings.Builder
	b.WriteString(`<div class="record-display">`)
	fmt.Fprintf(
		&b, `<h3 class="record-title">%s (%d items)</h3>`,
		html.EscapeString(title), len(records),
	)
	b.WriteString(`<div class="record-table-container"><table class="record-table"><thead><tr>`)
	for _, key := range keys {
		fmt.Fprintf(&b, `<th class="record-header">%s</th>`, html.EscapeString(textutil.FormatKey(key)))
	}
	b.WriteString(`</tr></thead><tbody>`)
	for _, record := range records {
		b.WriteString(`<tr class="record-row">`)
		for _, key := range keys {
			// missing keys render as the null classification
			value, _ := record.Get(key)
			fmt.Fprintf(
				&b, `<td class="record-cell" data-label="%s">%s</td>`,
				html.EscapeString(textutil.FormatKey(key)), FormatValue(value),
			)
		}
		b.WriteString(`</tr>`)
	}
	b.WriteString(`</tbody></table></div></div>`)
	return b.String()
}

func renderCards(records []Record) string {
	var b strings.Builder
	b.WriteString(`<div class="record-cards">`)
	for i, record := range records {
		fmt.Fprintf(&b, `<div class="record-card" data-index="%d">`, i)
		for _, f := range record {
			b.WriteString(`<div class="card-field">`)
			fmt.Fprintf(&b, `<strong class="field-label">%s:</strong>`, html.EscapeString(textutil.FormatKey(f.Key)))
			fmt.Fprintf(&b, `<span class="field-value">%s</span>`, FormatValue(f.Value))
			b.WriteString(`</div>`)
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}
