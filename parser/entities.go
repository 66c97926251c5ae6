package parser

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// namedCharacterReferences is the fixed set of named references that get
// decoded; anything else is kept literally. nbsp maps to U+0020.
var namedCharacterReferences = map[string]string{
	"amp":  "&",
	"lt":   "<",
	"gt":   ">",
	"quot": `"`,
	"apos": "'",
	"nbsp": " ",
}

// decodeEntities replaces the character references in s. References must
// be terminated by ';'; unknown or invalid ones are left untouched.
func decodeEntities(s string) string {
	i := strings.IndexByte(s, '&')
	if i < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i >= 0 {
		b.WriteString(s[:i])
		s = s[i:]
		if r, n := characterReference(s); n > 0 {
			b.WriteString(r)
			s = s[n:]
		} else {
			b.WriteByte('&')
			s = s[1:]
		}
		i = strings.IndexByte(s, '&')
	}
	b.WriteString(s)
	return b.String()
}

// characterReference decodes the reference s starts with. n is the number
// of bytes it spans, 0 if s does not start with a reference we decode.
func characterReference(s string) (string, int) {
	semi := 1
	for semi < len(s) && isReferenceByte(s[semi]) {
		semi++
	}
	if semi == len(s) || s[semi] != ';' {
		return "", 0
	}
	body := s[1:semi]
	if strings.HasPrefix(body, "#") {
		r, ok := numericCharacterReference(body[1:])
		if !ok {
			return "", 0
		}
		return string(r), semi + 1
	}
	if v, ok := namedCharacterReferences[body]; ok {
		return v, semi + 1
	}
	return "", 0
}

func isReferenceByte(c byte) bool {
	return c == '#' || '0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// numericCharacterReference parses the digits of &#NNN; or &#xHHHH;.
func numericCharacterReference(digits string) (rune, bool) {
	base := 10
	if strings.HasPrefix(digits, "x") || strings.HasPrefix(digits, "X") {
		base = 16
		digits = digits[1:]
	}
	if digits == "" {
		return 0, false
	}
	code, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return 0, false
	}
	r := rune(code)
	if code > utf8.MaxRune || !utf8.ValidRune(r) {
		return 0, false
	}
	return r, true
}
