package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

var camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// FormatKey turns a record key like "date_created" or "createdAt" into a
// human readable column label ("Date created", "Created At").
//
// The function is idempotent: feeding an already formatted label back in
// only trims whitespace.
func FormatKey(key string) string {
	label := strings.ReplaceAll(key, "_", " ")
	label = camelBoundary.ReplaceAllString(label, "$1 $2")
	label = whitespaceRegex.ReplaceAllString(label, " ")
	label = strings.TrimSpace(label)
	if label == "" {
		return ""
	}
	return strings.ToUpper(label[:1]) + label[1:]
}
