package renamer

import "strings"

// reservedChars are characters that are unsafe in filenames on at least one
// supported platform. They are replaced rather than kept so a label can
// never escape the target directory or produce an invalid name.
const reservedChars = `/\:*?"<>|`

// SanitizeLabel turns a free-form label into a filename stem: reserved and
// control characters are replaced with spaces, whitespace runs collapse to a
// single space, the result is truncated to maxLength runes and trailing dots
// and spaces are trimmed. An unusable label comes back as the empty string.
func SanitizeLabel(label string, maxLength int) string {
	var b strings.Builder
	for _, r := range label {
		if r < 0x20 || strings.ContainsRune(reservedChars, r) {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(r)
	}

	stem := strings.Join(strings.Fields(b.String()), " ")

	if maxLength > 0 {
		runes := []rune(stem)
		if len(runes) > maxLength {
			stem = string(runes[:maxLength])
		}
	}

	return strings.TrimRight(stem, ". ")
}
