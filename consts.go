package dateinfer

import "fmt"

// Weekday specifies the day of the week (Monday = 0, ...).
// Not compatible with the standard library's time.Weekday (in which Sunday = 0, ...).
type Weekday int

// The days of the week.
const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

func (d Weekday) String() string {
	return longWeekdayName(int(d))
}

func longWeekdayName(d int) string {
	if d > int(Sunday) {
		return fmt.Sprintf("%%!Weekday(%d)", d)
	}
	return longDayNames[d]
}

var longDayNames = [7]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

var shortDayNames = [7]string{
	Monday:    "Mon",
	Tuesday:   "Tue",
	Wednesday: "Wed",
	Thursday:  "Thu",
	Friday:    "Fri",
	Saturday:  "Sat",
	Sunday:    "Sun",
}

// Month specifies the month of the year (January = 1, ...).
type Month int

// The months of the year.
const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

func (m Month) String() string {
	return longMonthName(int(m))
}

func longMonthName(m int) string {
	if m < int(January) || m > int(December) {
		return fmt.Sprintf("%%!Month(%d)", m)
	}
	return longMonthNames[m-1]
}

var longMonthNames = [12]string{
	January - 1:   "January",
	February - 1:  "February",
	March - 1:     "March",
	April - 1:     "April",
	May - 1:       "May",
	June - 1:      "June",
	July - 1:      "July",
	August - 1:    "August",
	September - 1: "September",
	October - 1:   "October",
	November - 1:  "November",
	December - 1:  "December",
}

var shortMonthNames = [12]string{
	January - 1:   "Jan",
	February - 1:  "Feb",
	March - 1:     "Mar",
	April - 1:     "Apr",
	May - 1:       "May",
	June - 1:      "Jun",
	July - 1:      "Jul",
	August - 1:    "Aug",
	September - 1: "Sep",
	October - 1:   "Oct",
	November - 1:  "Nov",
	December - 1:  "Dec",
}

// longMonthLookup and shortMonthLookup map a lowercased month name to its
// Month value, built once from the tables above rather than hand-duplicated.
var (
	longMonthLookup    = buildLookup(longMonthNames[:], int(January))
	shortMonthLookup   = buildLookup(shortMonthNames[:], int(January))
	longWeekdayLookup  = buildLookup(longDayNames[:], int(Monday))
	shortWeekdayLookup = buildLookup(shortDayNames[:], int(Monday))
)

func buildLookup(names []string, base int) map[string]int {
	m := make(map[string]int, len(names))
	for i, name := range names {
		m[foldCase(name)] = base + i
	}
	return m
}

// amPmNames recognizes the handful of English am/pm spellings this core
// supports (spec.md §4.2). The value is purely informational here; the role
// enumerator only needs to know a token belongs to this family. Punctuated
// spellings ("a.m.", "p.m.") are intentionally absent: the tokenizer splits
// alpha runs on ".", so those spellings never reach here as a single token.
var amPmNames = map[string]struct{}{
	"am": {}, "pm": {},
}

// timezoneAbbrevs is the fixed allow-list of recognized timezone
// abbreviations (spec.md §4.2, Open Question 2 in DESIGN.md), keyed by the
// lowercased form since role enumeration always looks up a token's folded
// text. Widen here only; nothing else needs to change.
var timezoneAbbrevs = buildLowerSet(
	"UTC", "GMT",
	"EST", "EDT",
	"CST", "CDT",
	"MST", "MDT",
	"PST", "PDT",
	"AKST", "AKDT",
	"HST",
)

func buildLowerSet(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, name := range names {
		m[foldCase(name)] = struct{}{}
	}
	return m
}
