package ui

func ternary(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}

// truncate shortens value to at most limit runes, ending in an ellipsis when
// anything was cut.
func truncate(value string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit == 1 {
		return "…"
	}
	return string(runes[:limit-1]) + "…"
}
