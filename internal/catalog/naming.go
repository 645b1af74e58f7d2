package catalog

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// BestGuessStoryName derives the PascalCase story name conventionally used
// for a component file stem: "split-button" -> "SplitButton",
// "ai_chat" -> "AiChat". Only the first rune of each segment changes case.
func BestGuessStoryName(fileStem string) string {
	segments := strings.FieldsFunc(fileStem, func(r rune) bool {
		return r == '-' || r == '_'
	})

	var b strings.Builder
	b.Grow(len(fileStem))
	for _, seg := range segments {
		r, size := utf8.DecodeRuneInString(seg)
		if r == utf8.RuneError && size == 1 {
			// Invalid UTF-8 is kept byte for byte.
			b.WriteString(seg)
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(seg[size:])
	}
	return b.String()
}
