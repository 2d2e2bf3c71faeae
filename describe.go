package dateinfer

import "strings"

// directiveDescription gives a short human label for each supported
// strptime directive (spec.md §6). The long month/weekday name directives
// (%B, %A) borrow their worked example straight from consts.go's
// Month/Weekday Stringers rather than a hand-typed literal, so "January"
// and "Monday" can never drift from the tables EnumerateAlpha's dictionaries
// are built from.
var directiveDescription = map[string]string{
	"%Y": "4-digit year",
	"%y": "2-digit year",
	"%m": "month",
	"%d": "day",
	"%H": "24-hour hour",
	"%I": "12-hour hour",
	"%M": "minute",
	"%S": "second",
	"%f": "microsecond",
	"%p": "am/pm",
	"%b": "abbreviated month name",
	"%B": "full month name (e.g. " + January.String() + ")",
	"%a": "abbreviated weekday name",
	"%A": "full weekday name (e.g. " + Monday.String() + ")",
	"%Z": "timezone abbreviation",
}

// Describe renders a short human-readable description of a format string
// previously produced by Infer/InferFormat, e.g. "day/month/4-digit year"
// for "%d/%m/%Y". Unrecognized directives and literal separators are
// skipped; Describe is for display only and never errors.
func Describe(format string) string {
	var parts []string
	runes := []rune(format)

	for i := 0; i < len(runes); i++ {
		if runes[i] != '%' || i+1 >= len(runes) {
			continue
		}
		if runes[i+1] == '%' {
			i++
			continue
		}
		directive := "%" + string(runes[i+1])
		if desc, ok := directiveDescription[directive]; ok {
			parts = append(parts, desc)
		}
		i++
	}

	return strings.Join(parts, "/")
}
