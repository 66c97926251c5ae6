package selector

import "strings"

// Compile parses a selector list. It never fails: characters outside the
// supported grammar are skipped and malformed fragments add no constraint.
// Groups that end up without any step are dropped.
func Compile(sel string) List {
	var list List
	for _, part := range splitGroups(sel) {
		c := &compiler{input: part}
		if g := c.group(); len(g) > 0 {
			list = append(list, g)
		}
	}
	return list
}

// splitGroups cuts the selector at top level commas. Commas inside an
// attribute test or inside a quoted value do not separate groups.
func splitGroups(s string) []string {
	var (
		parts []string
		depth int
		quote byte
		start int
	)
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			}
		case ch == '"' || ch == '\'':
			quote = ch
		case ch == '[':
			depth++
		case ch == ']':
			if depth > 0 {
				depth--
			}
		case ch == ',' && depth == 0:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

type compiler struct {
	input string
	pos   int
}

func (c *compiler) eof() bool {
	return c.pos >= len(c.input)
}

func (c *compiler) peek() byte {
	if c.eof() {
		return 0
	}
	return c.input[c.pos]
}

func (c *compiler) skipWhitespace() {
	for !c.eof() && isWhitespace(c.input[c.pos]) {
		c.pos++
	}
}

func (c *compiler) group() Group {
	var (
		g    Group
		comb = Descendant
	)
	for !c.eof() {
		switch ch := c.peek(); {
		case isWhitespace(ch):
			c.skipWhitespace()
		case ch == '>':
			c.pos++
			comb = Child
		default:
			if cp := c.compound(); !cp.empty() {
				g = append(g, Step{Combinator: comb, Compound: cp})
				comb = Descendant
			}
		}
	}
	return g
}

// compound reads one step up to the next whitespace or '>'.
func (c *compiler) compound() Compound {
	var cp Compound
	switch ch := c.peek(); {
	case ch == '*':
		cp.Tag = "*"
		c.pos++
	case isIdentByte(ch):
		cp.Tag = strings.ToLower(c.ident())
	}

	for !c.eof() {
		switch ch := c.peek(); {
		case isWhitespace(ch) || ch == '>':
			return cp
		case ch == '#':
			c.pos++
			// only the first id takes part in matching
			if id := c.ident(); id != "" && cp.ID == "" {
				cp.ID = id
			}
		case ch == '.':
			c.pos++
			if class := c.ident(); class != "" {
				cp.Classes = append(cp.Classes, class)
			}
		case ch == '[':
			c.pos++
			if a, ok := c.attr(); ok {
				cp.Attrs = append(cp.Attrs, a)
			}
		case isIdentByte(ch):
			// a bare identifier after the tag has no meaning here
			c.ident()
		default:
			c.pos++
		}
	}
	return cp
}

// attr reads an attribute test after its opening '['. The closing ']' is
// always consumed; ok is false when the test is malformed.
func (c *compiler) attr() (AttrTest, bool) {
	c.skipWhitespace()
	a := AttrTest{Name: strings.ToLower(c.ident())}
	ok := a.Name != ""
	c.skipWhitespace()

	switch c.peek() {
	case ']':
		c.pos++
		return a, ok
	case '=':
		c.pos++
		c.skipWhitespace()
		a.Value = c.attrValue()
		a.HasValue = true
		c.skipWhitespace()
		if c.peek() != ']' {
			ok = false
		}
	default:
		ok = false
	}
	c.skipPastBracket()
	return a, ok
}

func (c *compiler) attrValue() string {
	if q := c.peek(); q == '"' || q == '\'' {
		c.pos++
		start := c.pos
		end := strings.IndexByte(c.input[start:], q)
		if end < 0 {
			c.pos = len(c.input)
			return c.input[start:]
		}
		c.pos = start + end + 1
		return c.input[start : start+end]
	}

	start := c.pos
	for !c.eof() && !isWhitespace(c.peek()) && c.peek() != ']' {
		c.pos++
	}
	return c.input[start:c.pos]
}

func (c *compiler) skipPastBracket() {
	var quote byte
	for !c.eof() {
		ch := c.input[c.pos]
		c.pos++
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			}
		case ch == '"' || ch == '\'':
			quote = ch
		case ch == ']':
			return
		}
	}
}

func (c *compiler) ident() string {
	start := c.pos
	for !c.eof() && isIdentByte(c.input[c.pos]) {
		c.pos++
	}
	return c.input[start:c.pos]
}

func isIdentByte(b byte) bool {
	switch {
	case 'a' <= b && b <= 'z', 'A' <= b && b <= 'Z', '0' <= b && b <= '9':
		return true
	case b == '-', b == '_', b == ':':
		return true
	}
	// bytes of multi-byte UTF-8 sequences
	return b >= 0x80
}

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}
