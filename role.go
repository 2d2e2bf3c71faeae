package dateinfer

import (
	"golang.org/x/text/cases"
)

// foldCase is the single case-folding entry point used by the tokenizer and
// role enumerator for alpha-token lookups, in place of strings.ToLower. A
// cases.Caser is stateful, so each call builds its own rather than sharing
// one across concurrent Infer calls.
func foldCase(s string) string {
	return cases.Fold().String(s)
}

// RoleKind is one member of the closed Role vocabulary from spec.md §3.
type RoleKind uint8

const (
	RoleYear4 RoleKind = iota
	RoleYear2
	RoleMonth
	RoleMonthNameShort
	RoleMonthNameLong
	RoleDay
	RoleHour24
	RoleHour12
	RoleMinute
	RoleSecond
	RoleMicrosecond
	RoleAmPm
	RoleWeekdayShort
	RoleWeekdayLong
	RoleTimezone
	roleCount // sentinel; not a real role
)

// RolePriority is the fixed ordering used for deterministic tie-breaks
// (spec.md §3: "Ordered by a fixed priority for deterministic tie-breaks").
// It is also the order RoleSet.Roles returns candidates in.
var RolePriority = [...]RoleKind{
	RoleYear4,
	RoleMonthNameLong,
	RoleMonthNameShort,
	RoleWeekdayLong,
	RoleWeekdayShort,
	RoleTimezone,
	RoleAmPm,
	RoleMonth,
	RoleDay,
	RoleHour24,
	RoleHour12,
	RoleMinute,
	RoleSecond,
	RoleYear2,
	RoleMicrosecond,
}

// directive is the fixed strptime projection for each role (spec.md §3, §4.7).
var directive = [roleCount]string{
	RoleYear4:          "%Y",
	RoleYear2:          "%y",
	RoleMonth:          "%m",
	RoleMonthNameShort: "%b",
	RoleMonthNameLong:  "%B",
	RoleDay:            "%d",
	RoleHour24:         "%H",
	RoleHour12:         "%I",
	RoleMinute:         "%M",
	RoleSecond:         "%S",
	RoleMicrosecond:    "%f",
	RoleAmPm:           "%p",
	RoleWeekdayShort:   "%a",
	RoleWeekdayLong:    "%A",
	RoleTimezone:       "%Z",
}

var roleName = [roleCount]string{
	RoleYear4:          "Year4",
	RoleYear2:          "Year2",
	RoleMonth:          "Month",
	RoleMonthNameShort: "MonthNameShort",
	RoleMonthNameLong:  "MonthNameLong",
	RoleDay:            "Day",
	RoleHour24:         "Hour24",
	RoleHour12:         "Hour12",
	RoleMinute:         "Minute",
	RoleSecond:         "Second",
	RoleMicrosecond:    "Microsecond",
	RoleAmPm:           "AmPm",
	RoleWeekdayShort:   "WeekdayShort",
	RoleWeekdayLong:    "WeekdayLong",
	RoleTimezone:       "Timezone",
}

func (k RoleKind) String() string {
	if int(k) >= len(roleName) {
		return "Unknown"
	}
	return roleName[k]
}

// RoleSet is a small set of candidate roles for one token (spec.md §3,
// §9: "a bitset keyed by a dense integer encoding of Role works well and
// keeps voting tallies cache-local").
type RoleSet uint32

func roleBit(k RoleKind) RoleSet {
	return RoleSet(1) << uint(k)
}

func newRoleSet(kinds ...RoleKind) RoleSet {
	var s RoleSet
	for _, k := range kinds {
		s |= roleBit(k)
	}
	return s
}

// Contains reports whether k is a member of the set.
func (s RoleSet) Contains(k RoleKind) bool {
	return s&roleBit(k) != 0
}

// Add returns s with k added.
func (s RoleSet) Add(k RoleKind) RoleSet {
	return s | roleBit(k)
}

// Intersect returns the roles present in both sets.
func (s RoleSet) Intersect(other RoleSet) RoleSet {
	return s & other
}

// Union returns the roles present in either set.
func (s RoleSet) Union(other RoleSet) RoleSet {
	return s | other
}

// Len reports the number of candidate roles in the set.
func (s RoleSet) Len() int {
	n := 0
	for _, k := range RolePriority {
		if s.Contains(k) {
			n++
		}
	}
	return n
}

// Single returns the lone member of a singleton set, and true. If the set
// is not a singleton, ok is false.
func (s RoleSet) Single() (k RoleKind, ok bool) {
	if s.Len() != 1 {
		return 0, false
	}
	for _, c := range RolePriority {
		if s.Contains(c) {
			return c, true
		}
	}
	return 0, false
}

// Roles returns the set's members in RolePriority order.
func (s RoleSet) Roles() []RoleKind {
	out := make([]RoleKind, 0, s.Len())
	for _, k := range RolePriority {
		if s.Contains(k) {
			out = append(out, k)
		}
	}
	return out
}

// EnumerateNumeric computes the candidate role set for a numeric token
// with the given value and digit count, per the table in spec.md §4.2.
func EnumerateNumeric(value, digits int) RoleSet {
	switch {
	case digits == 4 && value >= 1000 && value <= 9999:
		return newRoleSet(RoleYear4)
	case digits == 2 && value <= 99:
		s := newRoleSet(RoleYear2)
		return s | enumerateSmallNumeric(value, digits)
	case (digits == 1 || digits == 2) && value >= 0 && value <= 59:
		return enumerateSmallNumeric(value, digits)
	case (digits == 6 || digits == 3) && value < 1_000_000:
		return newRoleSet(RoleMicrosecond)
	default:
		return 0
	}
}

// enumerateSmallNumeric implements the 1/2-digit value-range rows of
// spec.md §4.2's table (shared by the bare 1-2 digit case and as a
// supplement to the 2-digit Year2 case). The table in spec.md §4.2 only
// enumerates rows starting at value 1, leaving value 0 unaddressed even
// though "00" is a completely ordinary minute/second/hour (e.g.
// "10:30:00"); Day and Month can never legally be 0 (calendar fields are
// 1-based) nor can the 12-hour clock, so value 0 is resolved here to the
// three roles that are legitimately zero: Hour24, Minute, Second.
func enumerateSmallNumeric(value, digits int) RoleSet {
	switch {
	case value == 0:
		return newRoleSet(RoleHour24, RoleMinute, RoleSecond)
	case value >= 1 && value <= 12:
		return newRoleSet(RoleMonth, RoleDay, RoleHour12, RoleHour24, RoleMinute, RoleSecond)
	case value >= 13 && value <= 23:
		return newRoleSet(RoleDay, RoleHour24, RoleMinute, RoleSecond)
	case value >= 24 && value <= 31:
		return newRoleSet(RoleDay, RoleMinute, RoleSecond)
	case value >= 32 && value <= 59:
		return newRoleSet(RoleMinute, RoleSecond)
	default:
		return 0
	}
}

// EnumerateAlpha computes the candidate role set for an alpha token, using
// the already-lowercased text. ok is false if the token matches none of the
// fixed English dictionaries (spec.md §4.2: "Unknown alphas make the entire
// signature bucket ineligible").
func EnumerateAlpha(text string) (RoleSet, bool) {
	var s RoleSet
	if _, ok := shortMonthLookup[text]; ok {
		s = s.Add(RoleMonthNameShort)
	}
	if _, ok := longMonthLookup[text]; ok {
		s = s.Add(RoleMonthNameLong)
	}
	if _, ok := shortWeekdayLookup[text]; ok {
		s = s.Add(RoleWeekdayShort)
	}
	if _, ok := longWeekdayLookup[text]; ok {
		s = s.Add(RoleWeekdayLong)
	}
	if _, ok := amPmNames[text]; ok {
		s = s.Add(RoleAmPm)
	}
	if _, ok := timezoneAbbrevs[text]; ok {
		s = s.Add(RoleTimezone)
	}
	return s, s != 0
}
