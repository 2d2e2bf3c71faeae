package dateinfer

// validateStrict re-tokenizes every non-sentinel original input and checks
// it for compatibility with the resolved signature and role assignment
// (spec.md §4.8): matching token count, matching digit counts and alpha
// families, numeric values within range for their assigned role, and
// calendar-sane Day/Month/Year combinations. It returns the count of
// incompatible inputs and the total checked.
func validateStrict(inputs []string, sig signature, slots []Slot) (bad, total int) {
	for _, raw := range inputs {
		if isSentinel(raw) {
			continue
		}
		total++

		tokens := Tokenize(raw)
		if !compatible(tokens, sig, slots) {
			bad++
		}
	}
	return bad, total
}

func compatible(tokens []Token, sig signature, slots []Slot) bool {
	if len(tokens) != len(sig) {
		return false
	}

	var month, day, year int
	haveMonth, haveDay, haveYear := false, false, false

	for p, e := range sig {
		tok := tokens[p]
		switch e.kind {
		case sigSep:
			if tok.Kind != Separator || tok.Literal != e.literal {
				return false
			}
		case sigNum:
			if tok.Kind != Numeric || tok.Digits != e.digits {
				return false
			}
			if !roleInRange(slots[p].Role, tok.Value) {
				return false
			}
			switch slots[p].Role {
			case RoleMonth:
				month, haveMonth = tok.Value, true
			case RoleDay:
				day, haveDay = tok.Value, true
			case RoleYear4:
				year, haveYear = tok.Value, true
			case RoleYear2:
				year, haveYear = expandYear2(tok.Value), true
			}
		case sigAlpha:
			if tok.Kind != Alpha {
				return false
			}
			if !alphaMatchesRole(slots[p].Role, tok.Text) {
				return false
			}
			if slots[p].Role == RoleMonthNameShort {
				month, haveMonth = shortMonthLookup[tok.Text], true
			} else if slots[p].Role == RoleMonthNameLong {
				month, haveMonth = longMonthLookup[tok.Text], true
			}
		}
	}

	if haveMonth && haveDay {
		y := 2000
		if haveYear {
			y = year
		}
		if !isDayValid(y, Month(month), day) {
			return false
		}
	}

	return true
}

// expandYear2 converts a 2-digit year to a 4-digit one using the POSIX/ISO
// C convention go-chrono documents in its own format.go doc comment:
// values 69-99 map to 1969-1999, values 0-68 map to 2000-2068.
func expandYear2(v int) int {
	if v >= 69 {
		return 1900 + v
	}
	return 2000 + v
}

func roleInRange(role RoleKind, value int) bool {
	switch role {
	case RoleYear4:
		return value >= 1000 && value <= 9999
	case RoleYear2:
		return value >= 0 && value <= 99
	case RoleMonth:
		return value >= 1 && value <= 12
	case RoleDay:
		return value >= 1 && value <= 31
	case RoleHour24:
		return value >= 0 && value <= 23
	case RoleHour12:
		return value >= 1 && value <= 12
	case RoleMinute:
		return value >= 0 && value <= 59
	case RoleSecond:
		return value >= 0 && value <= 59
	case RoleMicrosecond:
		return value >= 0
	default:
		return true
	}
}

func alphaMatchesRole(role RoleKind, text string) bool {
	switch role {
	case RoleMonthNameShort:
		_, ok := shortMonthLookup[text]
		return ok
	case RoleMonthNameLong:
		_, ok := longMonthLookup[text]
		return ok
	case RoleWeekdayShort:
		_, ok := shortWeekdayLookup[text]
		return ok
	case RoleWeekdayLong:
		_, ok := longWeekdayLookup[text]
		return ok
	case RoleAmPm:
		_, ok := amPmNames[text]
		return ok
	case RoleTimezone:
		_, ok := timezoneAbbrevs[text]
		return ok
	default:
		return false
	}
}
