// Package ident derives exported Go identifiers from chain display names.
package ident

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FallbackPrefix starts identifiers whose sanitized name is empty or begins with a digit.
const FallbackPrefix = "Chain"

// Sanitize converts a display name into CamelCase built from ASCII letters and digits.
// Accents are removed, apostrophes dropped and every other separator starts a new word.
// Each word keeps its inner case; only a leading letter is upper-cased.
// The result may be empty or begin with a digit; see ForChain.
func Sanitize(name string) string {
	// Casers and transformer chains are stateful, so each call builds its own.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	upper := cases.Upper(language.Und)

	folded, _, err := transform.String(stripMarks, name)
	if err != nil {
		folded = name
	}
	folded = strings.Map(func(r rune) rune {
		if r == '\'' || r == '’' {
			return -1
		}
		return r
	}, folded)

	words := strings.FieldsFunc(folded, func(r rune) bool {
		return !isASCIIAlnum(r)
	})

	// Only a leading letter is raised, so "3rd" stays "3rd" and "zkEVM" becomes "ZkEVM".
	var b strings.Builder
	for _, w := range words {
		if unicode.IsLetter(rune(w[0])) {
			b.WriteString(upper.String(w[:1]))
			b.WriteString(w[1:])
			continue
		}
		b.WriteString(w)
	}
	return b.String()
}

// ForChain returns the identifier for a chain named name with the given id.
func ForChain(name string, id uint64) string {
	s := Sanitize(name)
	switch {
	case s == "":
		return FallbackPrefix + strconv.FormatUint(id, 10)
	case s[0] >= '0' && s[0] <= '9':
		return FallbackPrefix + s
	}
	return s
}

// IsExported reports whether s is an exported Go identifier made of ASCII letters, digits and underscores.
func IsExported(s string) bool {
	if s == "" || s[0] < 'A' || s[0] > 'Z' {
		return false
	}
	for _, r := range s {
		if !isASCIIAlnum(r) && r != '_' {
			return false
		}
	}
	return true
}

func isASCIIAlnum(r rune) bool {
	return r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))
}
