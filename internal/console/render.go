package console

import "strings"

const rule = "=================================================="

// spacedMask spreads the mask out for readability: one space between
// letters, a wider gap between words.
func spacedMask(mask string) string {
	var b strings.Builder
	for i, r := range mask {
		if i > 0 {
			b.WriteByte(' ')
		}
		if r == ' ' {
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func guessedList(letters []rune) string {
	if len(letters) == 0 {
		return "(none yet)"
	}
	parts := make([]string, len(letters))
	for i, r := range letters {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}
