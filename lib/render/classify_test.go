package render

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyNull(t *testing.T) {
	c := Classify(nil)
	require.Equal(t, KindNull, c.Kind)
	require.Equal(t, "N/A", c.Display)
}

func TestClassifyBool(t *testing.T) {
	require.Equal(t, Classified{Kind: KindBool, Display: "true"}, Classify(true))
	require.Equal(t, Classified{Kind: KindBool, Display: "false"}, Classify(false))
}

func TestClassifyNumber(t *testing.T) {
	require.Equal(t, Classified{Kind: KindNumber, Display: "42"}, Classify(42))
	require.Equal(t, Classified{Kind: KindNumber, Display: "1.5"}, Classify(1.5))
	require.Equal(t, Classified{Kind: KindNumber, Display: "3"}, Classify(float64(3)))
}

func TestClassifyDate(t *testing.T) {
	c := Classify("2024-10-23 10:30:00")
	require.Equal(t, KindDate, c.Kind)
	require.Equal(t, "Oct 23, 2024, 10:30 AM", c.Display)

	c = Classify("2024-10-23")
	require.Equal(t, KindDate, c.Kind)

	c = Classify("10/23/2024")
	require.Equal(t, KindDate, c.Kind)
}

func TestClassifyDatePatternButUnparseable(t *testing.T) {
	// matches the YYYY-MM-DD prefix pattern but is not a calendar
	// date, so it must fall through to the text classification
	c := Classify("9999-99-99")
	require.Equal(t, KindText, c.Kind)
}

func TestClassifyURL(t *testing.T) {
	c := Classify("http://example.com")
	require.Equal(t, KindURL, c.Kind)
	require.Equal(t, "http://example.com", c.Display)

	// relative paths are not navigable links
	require.Equal(t, KindText, Classify("/some/path").Kind)
	require.Equal(t, KindText, Classify("not a url").Kind)
}

func TestClassifyEmptyStringIsText(t *testing.T) {
	c := Classify("")
	require.Equal(t, KindText, c.Kind)
	require.Equal(t, "", c.Display)
}

func TestClassifyNested(t *testing.T) {
	c := Classify(map[string]any{"b": 2, "a": 1})
	require.Equal(t, KindNested, c.Kind)
	// stable key order, 2-space indentation
	require.Equal(t, "{\n  \"a\": 1,\n  \"b\": 2\n}", c.Display)
}
