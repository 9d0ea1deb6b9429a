package renamer

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/shinji-kodama/renamer/internal/model"
)

// EscapeChar is the character EscapeSymbols places in front of every symbol.
const EscapeChar = '\\'

// EscapeSymbols returns s with EscapeChar in front of every character.
// Order and repetitions are preserved, so "!&!" becomes `\!\&\!`.
func EscapeSymbols(s string) string {
	var b strings.Builder
	b.Grow(2 * len(s))
	for _, r := range s {
		b.WriteRune(EscapeChar)
		b.WriteRune(r)
	}
	return b.String()
}

// Sanitizer replaces every forbidden character of a name with an underscore.
// The zero value and a Sanitizer built from an empty set leave names unchanged.
type Sanitizer struct {
	symbols string

	// class matches the valid UTF-8 runes of symbols. It is nil when
	// symbols holds no valid runes.
	class *regexp.Regexp

	// rawBytes marks the bytes of symbols that are not valid UTF-8.
	// They are compared byte for byte, since the regexp engine folds every
	// invalid byte into U+FFFD and could not tell \xfe from \xff.
	rawBytes   [256]bool
	hasRawByte bool
}

// NewSanitizer compiles a character class matching any rune of symbols.
//
// Bytes of symbols that are not valid UTF-8 only ever match the identical
// byte in a name. Likewise a literal U+FFFD in symbols matches only an
// encoded U+FFFD, never an invalid byte.
func NewSanitizer(symbols string) (*Sanitizer, error) {
	s := &Sanitizer{symbols: symbols}

	var valid strings.Builder
	for i := 0; i < len(symbols); {
		r, size := utf8.DecodeRuneInString(symbols[i:])
		if r == utf8.RuneError && size == 1 {
			s.rawBytes[symbols[i]] = true
			s.hasRawByte = true
		} else {
			valid.WriteString(symbols[i : i+size])
		}
		i += size
	}
	if valid.Len() == 0 {
		return s, nil
	}

	re, err := regexp.Compile("[" + classBody(valid.String()) + "]")
	if err != nil {
		return nil, errors.Wrapf(err, "compile forbidden symbols %q", symbols)
	}
	s.class = re
	return s, nil
}

// classBody escapes the symbols that carry meaning inside a character class.
// RE2 reads escaped ASCII letters and digits as classes (\d, \w) or rejects
// them, so those and non-ASCII runes are written as-is.
func classBody(symbols string) string {
	var b strings.Builder
	for _, r := range symbols {
		if r < utf8.RuneSelf && !isAlnum(r) {
			b.WriteString(EscapeSymbols(string(r)))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isAlnum(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

// Symbols returns the forbidden symbol set.
func (s *Sanitizer) Symbols() string {
	return s.symbols
}

// Sanitize returns name with each forbidden character replaced by "_".
func (s *Sanitizer) Sanitize(name string) string {
	if s == nil || (s.class == nil && !s.hasRawByte) {
		return name
	}
	if utf8.ValidString(name) {
		return s.replaceRunes(name)
	}

	// Split name into valid runs and single invalid bytes. The class only
	// sees valid runs, so an invalid byte is never matched as U+FFFD.
	var b strings.Builder
	b.Grow(len(name))
	start := 0
	for i := 0; i < len(name); {
		r, size := utf8.DecodeRuneInString(name[i:])
		if r != utf8.RuneError || size != 1 {
			i += size
			continue
		}
		b.WriteString(s.replaceRunes(name[start:i]))
		if s.rawBytes[name[i]] {
			b.WriteString(model.Replacement)
		} else {
			b.WriteByte(name[i])
		}
		i++
		start = i
	}
	b.WriteString(s.replaceRunes(name[start:]))
	return b.String()
}

// replaceRunes applies the class to a valid UTF-8 string.
func (s *Sanitizer) replaceRunes(valid string) string {
	if s.class == nil || valid == "" {
		return valid
	}
	return s.class.ReplaceAllLiteralString(valid, model.Replacement)
}

// Sanitize is the one-shot form of NewSanitizer(symbols).Sanitize(name).
func Sanitize(name, symbols string) (string, error) {
	s, err := NewSanitizer(symbols)
	if err != nil {
		return "", err
	}
	return s.Sanitize(name), nil
}
