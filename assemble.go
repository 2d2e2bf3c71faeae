package dateinfer

import "strings"

// assemble walks the resolved slots in order and produces the strptime
// format string (spec.md §4.7) plus the ordered token-type names exposed on
// InferResult (spec.md §3, §6).
func assemble(slots []Slot) (format string, tokenTypes []string) {
	var b strings.Builder
	tokenTypes = make([]string, 0, len(slots))

	for _, s := range slots {
		switch s.Kind {
		case slotLiteral:
			b.WriteString(escapePercent(s.Literal))
			tokenTypes = append(tokenTypes, literalTokenType(s.Literal))
		case slotRole:
			b.WriteString(directive[s.Role])
			tokenTypes = append(tokenTypes, s.Role.String())
		}
	}

	return b.String(), tokenTypes
}

// escapePercent doubles any literal '%' so it round-trips through a
// strptime-style format string rather than being mistaken for a directive.
func escapePercent(literal string) string {
	if !strings.Contains(literal, "%") {
		return literal
	}
	return strings.ReplaceAll(literal, "%", "%%")
}

func literalTokenType(literal string) string {
	return "Literal('" + literal + "')"
}
