package parser

import (
	"strings"
)

type tokenType uint

const (
	characterToken tokenType = iota
	startTagToken
	endTagToken
	endOfFileToken
	commentToken
)

// Token is a concrete token that is ready to be emitted.
type Token struct {
	TokenType   tokenType
	Attributes  map[string]string
	TagName     string
	SelfClosing bool
	// Data is decoded text for character tokens, the comment body for
	// comments and the literal body of raw text elements for start tags.
	Data string
}

// TokenBuilder builds various tokens up during the tokenization
// phase.
type TokenBuilder struct {
	attributes     map[string]string
	attributeKey   strings.Builder
	attributeValue strings.Builder
	name           strings.Builder
	data           strings.Builder
	selfClosing    bool
}

func newTokenBuilder() *TokenBuilder {
	return &TokenBuilder{
		attributes: make(map[string]string),
	}
}

// Reset clears all the builders and attributes.
func (t *TokenBuilder) Reset() {
	t.attributes = make(map[string]string)
	t.attributeKey.Reset()
	t.attributeValue.Reset()
	t.data.Reset()
	t.name.Reset()
	t.selfClosing = false
}

// EnableSelfClosing changes to the self-closing flag to "set".
func (t *TokenBuilder) EnableSelfClosing() {
	t.selfClosing = true
}

// WriteAttributeName appends to the current attribute's name.
func (t *TokenBuilder) WriteAttributeName(s string) {
	t.attributeKey.WriteString(s)
}

// WriteAttributeValue appends to the current attribute's value.
func (t *TokenBuilder) WriteAttributeValue(s string) {
	t.attributeValue.WriteString(s)
}

// WriteName appends to the current tag name.
func (t *TokenBuilder) WriteName(s string) {
	t.name.WriteString(s)
}

// WriteData appends to the current data section.
func (t *TokenBuilder) WriteData(s string) {
	t.data.WriteString(s)
}

// CommitAttribute ends the creation of a key/value pair by copying the name
// and value into the attributes and clearing both. A later attribute with
// the same name replaces an earlier one.
func (t *TokenBuilder) CommitAttribute() {
	k := strings.ToLower(t.attributeKey.String())
	if k != "" {
		t.attributes[k] = t.attributeValue.String()
	}
	t.attributeKey.Reset()
	t.attributeValue.Reset()
}

// StartTagToken creates a start tag token from the builder
// contents.
func (t *TokenBuilder) StartTagToken() *Token {
	return &Token{
		TokenType:   startTagToken,
		TagName:     strings.ToLower(t.name.String()),
		Attributes:  t.attributes,
		SelfClosing: t.selfClosing,
		Data:        t.data.String(),
	}
}

// EndTagToken creates an end tag token from the builder
// contents.
func (t *TokenBuilder) EndTagToken() *Token {
	return &Token{
		TokenType: endTagToken,
		TagName:   strings.ToLower(t.name.String()),
	}
}

// CharacterToken creates a character token holding a run of text.
func (t *TokenBuilder) CharacterToken(data string) *Token {
	return &Token{
		TokenType: characterToken,
		Data:      data,
	}
}

// EndOfFileToken create an end of file token.
func (t *TokenBuilder) EndOfFileToken() *Token {
	return &Token{
		TokenType: endOfFileToken,
	}
}

// CommentToken creates a comment token from the builder contents.
func (t *TokenBuilder) CommentToken() *Token {
	return &Token{
		TokenType: commentToken,
		Data:      t.data.String(),
	}
}
