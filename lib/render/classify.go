package render

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strconv"
	"time"
)

// Kind is the inferred semantic type of a scalar value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindDate
	KindURL
	KindText
	KindNested
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	case KindURL:
		return "url"
	case KindText:
		return "text"
	case KindNested:
		return "nested"
	}
	return "unknown"
}

// Classified is the result of inferring a value's kind. Display is the
// plain (unescaped) display text; escaping for markup embedding happens
// at render time.
type Classified struct {
	Kind    Kind
	Display string
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`),
	regexp.MustCompile(`^\d{2}/\d{2}/\d{4}`),
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\s\d{2}:\d{2}:\d{2}`),
}

var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006",
}

const dateDisplayLayout = "Jan 2, 2006, 3:04 PM"

// parseDate returns the parsed time if the string both looks like a
// date (prefix pattern) and parses as a calendar date. A string that
// matches a pattern but fails to parse is not a date; it falls through
// to the url/text checks.
func parseDate(s string) (time.Time, bool) {
	matched := false
	for _, p := range datePatterns {
		if p.MatchString(s) {
			matched = true
			break
		}
	}
	if !matched {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.IsAbs() && u.Host != ""
}

// Classify infers the semantic kind of a value and formats it for
// display. Nil is Null ("N/A"); the empty string is Text, not Null.
func Classify(value any) Classified {
	if value == nil {
		return Classified{Kind: KindNull, Display: "N/A"}
	}

	switch v := value.(type) {
	case bool:
		return Classified{Kind: KindBool, Display: strconv.FormatBool(v)}
	case int:
		return Classified{Kind: KindNumber, Display: strconv.Itoa(v)}
	case int64:
		return Classified{Kind: KindNumber, Display: strconv.FormatInt(v, 10)}
	case float64:
		return Classified{Kind: KindNumber, Display: strconv.FormatFloat(v, 'f', -1, 64)}
	case json.Number:
		return Classified{Kind: KindNumber, Display: v.String()}
	case string:
		if t, ok := parseDate(v); ok {
			return Classified{Kind: KindDate, Display: t.Format(dateDisplayLayout)}
		}
		if isAbsoluteURL(v) {
			return Classified{Kind: KindURL, Display: v}
		}
		return Classified{Kind: KindText, Display: v}
	}

	// maps, slices, nested records: a terminal structural dump, not
	// recursively classified
	dump, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return Classified{Kind: KindText, Display: "unserializable value"}
	}
	return Classified{Kind: KindNested, Display: string(dump)}
}
