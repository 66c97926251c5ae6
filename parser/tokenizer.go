package parser

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// HTMLTokenizer cuts the markup into tokens. The whole input is known up
// front and every byte is looked at once; nothing it meets is an error.
type HTMLTokenizer struct {
	input         string
	pos           int
	done          bool
	emittedTokens []*Token
	tokenBuilder  *TokenBuilder
	logger        logrus.FieldLogger
}

// NewHTMLTokenizer creates a tokenizer that can be used to process
// an HTML string.
func NewHTMLTokenizer(input string, config Config) *HTMLTokenizer {
	return &HTMLTokenizer{
		input:        input,
		tokenBuilder: newTokenBuilder(),
		logger:       config.logger(),
	}
}

// Next reports whether the end of file token has not been handed out yet.
func (p *HTMLTokenizer) Next() bool {
	return !p.done || len(p.emittedTokens) > 0
}

// Token returns the next token. Once the input is used up it returns the
// end of file token, then nil.
func (p *HTMLTokenizer) Token() *Token {
	// some steps emit no token at all, loop until one shows up.
	for {
		if token := p.takeEmittedToken(); token != nil {
			return token
		}
		if p.done {
			return nil
		}
		p.step()
	}
}

func (p *HTMLTokenizer) emit(tokens ...*Token) {
	p.emittedTokens = append(p.emittedTokens, tokens...)
}

func (p *HTMLTokenizer) takeEmittedToken() *Token {
	if len(p.emittedTokens) == 0 {
		return nil
	}
	t := p.emittedTokens[0]
	p.emittedTokens = p.emittedTokens[1:]
	return t
}

func (p *HTMLTokenizer) log(method string) logrus.FieldLogger {
	return p.logger.WithFields(logrus.Fields{
		"method": method,
		"offset": p.pos,
	})
}

func (p *HTMLTokenizer) eof() bool {
	return p.pos >= len(p.input)
}

func (p *HTMLTokenizer) step() {
	if p.eof() {
		p.emit(p.tokenBuilder.EndOfFileToken())
		p.done = true
		return
	}

	rest := p.input[p.pos:]
	switch {
	case strings.HasPrefix(rest, "<!--"):
		p.consumeComment()
	case strings.HasPrefix(rest, "<!"):
		p.consumeBogusMarkup(2)
	case strings.HasPrefix(rest, "</"):
		if len(rest) > 2 && isASCIIAlpha(rest[2]) {
			p.consumeEndTag()
		} else {
			p.consumeBogusMarkup(2)
		}
	case len(rest) > 1 && rest[0] == '<' && isASCIIAlpha(rest[1]):
		p.consumeStartTag()
	default:
		p.consumeText()
	}
}

// isMarkupStart reports whether a '<' at i opens a tag, an end tag, a
// comment or a declaration. Any other '<' is plain text.
func (p *HTMLTokenizer) isMarkupStart(i int) bool {
	if i+1 >= len(p.input) || p.input[i] != '<' {
		return false
	}
	next := p.input[i+1]
	return next == '!' || next == '/' || isASCIIAlpha(next)
}

func (p *HTMLTokenizer) consumeText() {
	start := p.pos
	p.pos++
	for !p.eof() {
		i := strings.IndexByte(p.input[p.pos:], '<')
		if i < 0 {
			p.pos = len(p.input)
			break
		}
		p.pos += i
		if p.isMarkupStart(p.pos) {
			break
		}
		p.pos++
	}

	if data := decodeEntities(p.input[start:p.pos]); data != "" {
		p.emit(p.tokenBuilder.CharacterToken(data))
	}
}

func (p *HTMLTokenizer) consumeComment() {
	p.pos += len("<!--")
	p.tokenBuilder.Reset()
	end := strings.Index(p.input[p.pos:], "-->")
	if end < 0 {
		p.log("consumeComment").Debug("unterminated comment runs to the end of input")
		p.tokenBuilder.WriteData(p.input[p.pos:])
		p.pos = len(p.input)
	} else {
		p.tokenBuilder.WriteData(p.input[p.pos : p.pos+end])
		p.pos += end + len("-->")
	}
	p.emit(p.tokenBuilder.CommentToken())
}

// consumeBogusMarkup drops everything up to and including the next '>'.
func (p *HTMLTokenizer) consumeBogusMarkup(skip int) {
	p.pos += skip
	end := strings.IndexByte(p.input[p.pos:], '>')
	if end < 0 {
		p.log("consumeBogusMarkup").Debug("unterminated declaration runs to the end of input")
		p.pos = len(p.input)
		return
	}
	p.pos += end + 1
}

func (p *HTMLTokenizer) consumeEndTag() {
	p.pos += len("</")
	p.tokenBuilder.Reset()
	p.tokenBuilder.WriteName(p.readUntil(isTagNameEnd))
	// whatever follows the name, attributes included, is ignored.
	end := strings.IndexByte(p.input[p.pos:], '>')
	if end < 0 {
		p.log("consumeEndTag").Debug("truncated end tag")
		p.pos = len(p.input)
	} else {
		p.pos += end + 1
	}
	p.emit(p.tokenBuilder.EndTagToken())
}

func (p *HTMLTokenizer) consumeStartTag() {
	p.pos++
	b := p.tokenBuilder
	b.Reset()
	b.WriteName(p.readUntil(isTagNameEnd))

attributes:
	for {
		p.skipWhitespace()
		if p.eof() {
			p.log("consumeStartTag").Debug("truncated start tag")
			break
		}
		switch p.input[p.pos] {
		case '>':
			p.pos++
			break attributes
		case '/':
			p.pos++
			if !p.eof() && p.input[p.pos] == '>' {
				b.EnableSelfClosing()
				p.pos++
				break attributes
			}
		default:
			p.consumeAttribute()
		}
	}

	token := b.StartTagToken()
	if rawTextElements[token.TagName] {
		token.Data = p.consumeRawText(token.TagName)
	}
	p.emit(token)
}

func (p *HTMLTokenizer) consumeAttribute() {
	b := p.tokenBuilder
	start := p.pos
	// a leading '=' belongs to the name
	if p.input[p.pos] == '=' {
		p.pos++
	}
	p.readUntil(isAttributeNameEnd)
	b.WriteAttributeName(p.input[start:p.pos])

	p.skipWhitespace()
	if !p.eof() && p.input[p.pos] == '=' {
		p.pos++
		p.skipWhitespace()
		b.WriteAttributeValue(decodeEntities(p.attributeValue()))
	}
	b.CommitAttribute()
}

func (p *HTMLTokenizer) attributeValue() string {
	if p.eof() {
		return ""
	}
	if q := p.input[p.pos]; q == '"' || q == '\'' {
		p.pos++
		start := p.pos
		end := strings.IndexByte(p.input[start:], q)
		if end < 0 {
			p.log("attributeValue").Debug("unterminated quoted attribute value")
			p.pos = len(p.input)
			return p.input[start:]
		}
		p.pos = start + end + 1
		return p.input[start : start+end]
	}
	return p.readUntil(isBareValueEnd)
}

// consumeRawText captures the body of a script, style or textarea element
// verbatim, up to its end tag. The end tag itself is consumed as well.
func (p *HTMLTokenizer) consumeRawText(tagName string) string {
	start := p.pos
	end := indexEndTag(p.input, start, tagName)
	if end < 0 {
		p.log("consumeRawText").Debugf("no </%s> found, raw text runs to the end of input", tagName)
		p.pos = len(p.input)
		return p.input[start:]
	}

	gt := strings.IndexByte(p.input[end:], '>')
	if gt < 0 {
		p.pos = len(p.input)
	} else {
		p.pos = end + gt + 1
	}
	return p.input[start:end]
}

// indexEndTag finds "</tagName" at or after from, compared ASCII
// case-insensitively and followed by '>', '/', whitespace or the end of s.
func indexEndTag(s string, from int, tagName string) int {
	for i := from; i < len(s); {
		j := strings.Index(s[i:], "</")
		if j < 0 {
			return -1
		}
		i += j
		nameEnd := i + 2 + len(tagName)
		if nameEnd <= len(s) && equalFoldASCII(s[i+2:nameEnd], tagName) &&
			(nameEnd == len(s) || isTagNameEnd(s[nameEnd])) {
			return i
		}
		i += 2
	}
	return -1
}

func (p *HTMLTokenizer) readUntil(stop func(byte) bool) string {
	start := p.pos
	for !p.eof() && !stop(p.input[p.pos]) {
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *HTMLTokenizer) skipWhitespace() {
	p.readUntil(func(b byte) bool { return !isASCIIWhitespace(b) })
}

func isASCIIWhitespace(b byte) bool {
	switch b {
	case 0x09, 0x0A, 0x0C, 0x0D, 0x20:
		return true
	default:
		return false
	}
}

func isASCIIAlpha(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}

func isTagNameEnd(b byte) bool {
	return isASCIIWhitespace(b) || b == '/' || b == '>'
}

func isAttributeNameEnd(b byte) bool {
	return isTagNameEnd(b) || b == '='
}

func isBareValueEnd(b byte) bool {
	return isTagNameEnd(b)
}

func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if toLowerASCII(a[i]) != toLowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func toLowerASCII(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
