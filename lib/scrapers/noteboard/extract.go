package noteboard

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"noteboard-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// The board nests its content rows inside an unspecified number of
// wrapper tables. Candidate containers are tried from most specific to
// least specific; the first one that holds content rows wins and later
// selectors are never consulted.
var containerSelectors = []string{
	"table tr td table tbody",
	"table table tbody",
	"table tbody",
	"tbody",
}

// a container has content rows if at least one of its direct rows
// carries 4 or more data cells; anything shallower is layout
func hasContentRows(container *goquery.Selection) bool {
	found := false
	container.ChildrenFiltered("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		if row.ChildrenFiltered("td").Length() >= 4 {
			found = true
			return false
		}
		return true
	})
	return found
}

func findContentContainer(ctx context.Context, doc *goquery.Document) *goquery.Selection {
	for _, selector := range containerSelectors {
		var match *goquery.Selection
		doc.Find(selector).EachWithBreak(func(_ int, candidate *goquery.Selection) bool {
			if hasContentRows(candidate) {
				match = candidate
				return false
			}
			return true
		})
		if match != nil {
			slog.DebugContext(ctx, "found content container", "selector", selector)
			return match
		}
	}
	return nil
}

// ExtractNotes locates the row container inside the board's markup and
// maps its rows to notes, newest first.
//
// The board reports time-of-day only, so dates are parsed onto a fixed
// reference day; ordering across real calendar days is undefined.
// An unparseable document returns an error; a parseable document with
// no qualifying container returns an empty sequence, which callers
// must treat as "no data" rather than a failure.
func ExtractNotes(ctx context.Context, markup string) ([]Note, error) {
	ctx, span := tracer.Start(ctx, "ExtractNotes")
	defer span.End()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, err
	}

	container := findContentContainer(ctx, doc)
	if container == nil {
		span.AddEvent("no qualifying row container")
		return nil, nil
	}

	var notes []Note
	container.ChildrenFiltered("tr").Each(func(idx int, row *goquery.Selection) {
		cells := row.ChildrenFiltered("td")
		if cells.Length() < 4 {
			slog.DebugContext(
				ctx, "skipping short row",
				"row", idx,
				"cells", cells.Length(),
			)
			return
		}
		notes = append(notes, Note{
			SequentialID: len(notes) + 1,
			Firstname:    cellText(cells.Eq(0)),
			Lastname:     cellText(cells.Eq(1)),
			Note:         cellText(cells.Eq(2)),
			Date:         cellText(cells.Eq(3)),
		})
	})

	sortNotesNewestFirst(notes)

	span.SetAttributes(attribute.Int("notes", len(notes)))
	return notes, nil
}

func cellText(cell *goquery.Selection) string {
	var b strings.Builder
	for _, node := range cell.Nodes {
		b.WriteString(htmlutil.GetText(node))
	}
	return htmlutil.CleanText(b.String())
}

// the board gives time-of-day only; everything parses onto this day
var referenceDay = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

var noteTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"3:04:05 PM",
	"15:04:05",
	"3:04 PM",
	"15:04",
}

func parseNoteTime(s string) (time.Time, bool) {
	for _, layout := range noteTimeLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if t.Year() == 0 {
			t = referenceDay.Add(
				time.Duration(t.Hour())*time.Hour +
					time.Duration(t.Minute())*time.Minute +
					time.Duration(t.Second())*time.Second,
			)
		}
		return t, true
	}
	return time.Time{}, false
}

// stable sort, newest first; notes whose date cannot be parsed sink to
// the end in their extraction order
func sortNotesNewestFirst(notes []Note) {
	slices.SortStableFunc(notes, func(a, b Note) int {
		at, aok := parseNoteTime(a.Date)
		bt, bok := parseNoteTime(b.Date)
		if !aok && !bok {
			return 0
		}
		if !aok {
			return 1
		}
		if !bok {
			return -1
		}
		if at.After(bt) {
			return -1
		}
		if bt.After(at) {
			return 1
		}
		return 0
	})
}
