package noteboard

import (
	"context"
	"testing"

	"noteboard-backend/lib/testutil"

	"github.com/stretchr/testify/require"
)

// the live board wraps its content rows in a layout table whose single
// cell holds the real table
const nestedBoardPage = `
<html><body>
<table>
  <tr><td>
    <table>
      <tbody>
        <tr><td>John</td><td>Doe</td><td>first note</td><td>09:00:00 AM</td></tr>
        <tr><td>Jane</td><td>Smith</td><td>second note</td><td>02:00:00 PM</td></tr>
        <tr><td>Alice</td><td>Johnson</td><td>third note</td><td>11:30:00 AM</td></tr>
      </tbody>
    </table>
  </td></tr>
</table>
</body></html>`

func TestExtractNestedTable(t *testing.T) {
	cleanup := testutil.Setup(t, "lib/scrapers/noteboard")
	defer cleanup()

	notes, err := ExtractNotes(context.Background(), nestedBoardPage)
	require.NoError(t, err)
	require.Len(t, notes, 3)
}

func TestExtractSequentialIDsSurviveSort(t *testing.T) {
	notes, err := ExtractNotes(context.Background(), nestedBoardPage)
	require.NoError(t, err)
	require.Len(t, notes, 3)

	// ids were assigned 1..n in extraction order and remain attached
	// to their original rows after the newest-first sort
	byID := map[int]Note{}
	for _, n := range notes {
		byID[n.SequentialID] = n
	}
	require.Equal(t, "John", byID[1].Firstname)
	require.Equal(t, "Jane", byID[2].Firstname)
	require.Equal(t, "Alice", byID[3].Firstname)
}

func TestExtractSortsNewestFirst(t *testing.T) {
	notes, err := ExtractNotes(context.Background(), nestedBoardPage)
	require.NoError(t, err)
	require.Len(t, notes, 3)

	require.Equal(t, "02:00:00 PM", notes[0].Date)
	require.Equal(t, "11:30:00 AM", notes[1].Date)
	require.Equal(t, "09:00:00 AM", notes[2].Date)
}

func TestExtractFlatTable(t *testing.T) {
	page := `
<table><tbody>
  <tr><td>A</td><td>B</td><td>note</td><td>10:00:00 AM</td></tr>
</tbody></table>`
	notes, err := ExtractNotes(context.Background(), page)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, Note{
		SequentialID: 1,
		Firstname:    "A",
		Lastname:     "B",
		Note:         "note",
		Date:         "10:00:00 AM",
	}, notes[0])
}

func TestExtractSkipsShortRows(t *testing.T) {
	page := `
<table><tbody>
  <tr><td>header spanning row</td></tr>
  <tr><td>John</td><td>Doe</td><td>kept</td><td>10:00:00 AM</td></tr>
  <tr><td>too</td><td>short</td></tr>
</tbody></table>`
	notes, err := ExtractNotes(context.Background(), page)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, 1, notes[0].SequentialID)
	require.Equal(t, "kept", notes[0].Note)
}

func TestExtractNoQualifyingContainer(t *testing.T) {
	// tables exist but no row carries 4 data cells
	page := `<table><tbody><tr><td>a</td><td>b</td></tr></tbody></table>`
	notes, err := ExtractNotes(context.Background(), page)
	require.NoError(t, err)
	require.Empty(t, notes)

	notes, err = ExtractNotes(context.Background(), "<html><body><p>nothing</p></body></html>")
	require.NoError(t, err)
	require.Empty(t, notes)
}

func TestExtractNormalizesCellText(t *testing.T) {
	page := `
<table><tbody>
  <tr><td>  John </td><td>Doe</td><td>a
  multiline   note</td><td>10:00:00 AM</td></tr>
</tbody></table>`
	notes, err := ExtractNotes(context.Background(), page)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, "John", notes[0].Firstname)
	require.Equal(t, "a multiline note", notes[0].Note)
}

func TestParseNoteTime(t *testing.T) {
	a, ok := parseNoteTime("09:00:00 AM")
	require.True(t, ok)
	b, ok := parseNoteTime("02:00:00 PM")
	require.True(t, ok)
	require.True(t, b.After(a))

	full, ok := parseNoteTime("2024-10-23 14:20:00")
	require.True(t, ok)
	require.Equal(t, 14, full.Hour())

	_, ok = parseNoteTime("not a time")
	require.False(t, ok)
}

func TestSortUnparseableDatesSinkStably(t *testing.T) {
	notes := []Note{
		{SequentialID: 1, Date: "???"},
		{SequentialID: 2, Date: "09:00:00 AM"},
		{SequentialID: 3, Date: "!!!"},
	}
	sortNotesNewestFirst(notes)
	require.Equal(t, 2, notes[0].SequentialID)
	require.Equal(t, 1, notes[1].SequentialID)
	require.Equal(t, 3, notes[2].SequentialID)
}
