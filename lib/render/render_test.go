package render

import (
	"encoding/json"
	"html"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestRecordsEmptyInput(t *testing.T) {
	require.Equal(t, NoData, Records(nil, ModeTable, "Notes"))
	require.Equal(t, NoData, Records([]Record{}, ModeCards, "Notes"))
}

func TestTableUnionKeys(t *testing.T) {
	records := []Record{
		{{Key: "a", Value: 1}, {Key: "b", Value: 2}},
		{{Key: "b", Value: 3}, {Key: "c", Value: 4}},
	}
	out := Records(records, ModeTable, "Union")

	// headers for a, b, c in first-seen order
	aIdx := strings.Index(out, `<th class="record-header">A</th>`)
	bIdx := strings.Index(out, `<th class="record-header">B</th>`)
	cIdx := strings.Index(out, `<th class="record-header">C</th>`)
	require.NotEqual(t, -1, aIdx)
	require.NotEqual(t, -1, bIdx)
	require.NotEqual(t, -1, cIdx)
	require.Less(t, aIdx, bIdx)
	require.Less(t, bIdx, cIdx)

	// record 1 has no c value, so one cell renders the null
	// classification; record 2 has no a value, so another does too
	require.Equal(t, 2, strings.Count(out, `<span class="null-value">N/A</span>`))
}

func TestTableTitleAndCount(t *testing.T) {
	records := []Record{
		{{Key: "note", Value: "hello"}},
		{{Key: "note", Value: "world"}},
	}
	out := Records(records, ModeTable, "All Notes")
	require.Contains(t, out, `<h3 class="record-title">All Notes (2 items)</h3>`)
}

func TestCardsUsePerRecordKeys(t *testing.T) {
	records := []Record{
		{{Key: "a", Value: 1}},
		{{Key: "b", Value: 2}},
	}
	out := Records(records, ModeCards, "Cards")

	// no union padding: card 0 shows only a, card 1 only b
	require.Contains(t, out, `<strong class="field-label">A:</strong>`)
	require.Contains(t, out, `<strong class="field-label">B:</strong>`)
	require.NotContains(t, out, `null-value`)
	require.Equal(t, 2, strings.Count(out, `<div class="record-card"`))
}

func TestSingleRecord(t *testing.T) {
	record := Record{
		{Key: "firstname", Value: "John"},
		{Key: "lastname", Value: "Doe"},
	}
	out := Single(record, "User")
	require.Contains(t, out, `<h3 class="record-title">User</h3>`)
	require.Contains(t, out, `<span class="record-key">Firstname:</span>`)
	require.Contains(t, out, `<span class="string-value">John</span>`)
}

func TestRawRoundTrip(t *testing.T) {
	records := []Record{
		{
			{Key: "id", Value: json.Number("1")},
			{Key: "note", Value: "first <note>"},
		},
		{
			{Key: "note", Value: "second"},
			{Key: "done", Value: true},
		},
	}
	out := Records(records, ModeRaw, "ignored")
	require.True(t, strings.HasPrefix(out, `<pre class="record-raw">`))

	dump := strings.TrimPrefix(out, `<pre class="record-raw">`)
	dump = strings.TrimSuffix(dump, `</pre>`)
	dump = html.UnescapeString(dump)

	var parsed []Record
	err := json.Unmarshal([]byte(dump), &parsed)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(records, parsed))
}

func TestFormatValueEscapesText(t *testing.T) {
	out := FormatValue(`<script>alert("x")</script>`)
	require.NotContains(t, out, "<script>")
	require.Contains(t, out, "&lt;script&gt;")
}

func TestFormatValueURL(t *testing.T) {
	out := FormatValue("http://example.com")
	require.Equal(t, `<a href="http://example.com" target="_blank" class="url-value">http://example.com</a>`, out)
}

func TestRecordJSONPreservesOrder(t *testing.T) {
	record := Record{
		{Key: "z", Value: "last"},
		{Key: "a", Value: "first"},
	}
	data, err := json.Marshal(record)
	require.NoError(t, err)
	require.Equal(t, `{"z":"last","a":"first"}`, string(data))

	var parsed Record
	err = json.Unmarshal(data, &parsed)
	require.NoError(t, err)
	require.Equal(t, []string{"z", "a"}, parsed.Keys())
}
