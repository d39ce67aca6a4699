package parse

import (
	"go/ast"
	"go/token"
	"strconv"
	"strings"

	"github.com/lu-zero/argenum/internal/codefmt"
)

// Directive words. A directive comment has the form
//
//	//argenum:WORD(key = "value", ...)
//
// where the payload is optional. "derive" marks a type for generation and
// "variant" configures one enum member.
const (
	WordDerive  = "derive"
	WordVariant = "variant"
)

// Modifier keys.
const (
	KeyAlias      = "alias"
	KeyName       = "name"
	KeyTrimPrefix = "trimprefix"
)

const directivePrefix = "//argenum:"

// Directive is one parsed argenum directive comment.
type Directive struct {
	Word      string
	Modifiers []Modifier

	comment *ast.Comment
}

func (d *Directive) Pos() token.Pos { return d.comment.Pos() }
func (d *Directive) End() token.Pos { return d.comment.End() }

// Modifier is one key = "value" assignment of a directive payload.
type Modifier struct {
	Key   string
	Value string

	pos token.Pos // position of the key within the comment
}

func (m Modifier) Pos() token.Pos { return m.pos }

// IsDirective reports whether the comment is an argenum directive.
func IsDirective(c *ast.Comment) bool {
	return strings.HasPrefix(c.Text, directivePrefix)
}

// ParseDirective parses an argenum directive comment. The directive word
// must be one of [WordDerive] and [WordVariant], and the optional payload
// must be a parenthesized, comma-separated list of key = "value"
// assignments. Errors point at the offending byte of the comment.
func (p *Parser) ParseDirective(c *ast.Comment) (*Directive, error) {
	lex := lexer{p: p, c: c, i: len(directivePrefix)}

	word := lex.ident()
	switch word {
	case WordDerive, WordVariant:
	case "":
		return nil, codefmt.Errorf(p, lex.poser(), "missing argenum directive name")
	default:
		return nil, codefmt.Errorf(p, lex.poser(), "unknown argenum directive %q", word)
	}

	dir := &Directive{Word: word, comment: c}

	if lex.eof() {
		return dir, nil
	}
	if !lex.byte('(') {
		return nil, codefmt.Errorf(p, lex.poser(), "malformed argenum directive: expected '(' after %q", word)
	}

	for {
		lex.spaces()

		keyPos := lex.pos()
		key := lex.ident()
		if key == "" {
			return nil, codefmt.Errorf(p, lex.poser(), "malformed argenum directive: expected a key")
		}

		lex.spaces()
		if !lex.byte('=') {
			return nil, codefmt.Errorf(p, codefmt.Pos(keyPos), "key %q requires an assignment like %s = \"...\"", key, key)
		}

		lex.spaces()
		value, ok := lex.stringLit()
		if !ok {
			return nil, codefmt.Errorf(p, lex.poser(), "key %q requires a quoted string value", key)
		}

		dir.Modifiers = append(dir.Modifiers, Modifier{Key: key, Value: value, pos: keyPos})

		lex.spaces()
		if lex.byte(',') {
			continue
		}
		if lex.byte(')') {
			break
		}
		return nil, codefmt.Errorf(p, lex.poser(), "malformed argenum directive: expected ',' or ')'")
	}

	lex.spaces()
	if !lex.eof() {
		return nil, codefmt.Errorf(p, lex.poser(), "malformed argenum directive: unexpected trailing text")
	}

	return dir, nil
}

// lexer is a byte scanner over one directive comment.
type lexer struct {
	p *Parser
	c *ast.Comment
	i int
}

// pos returns the source position of the current byte.
func (lex *lexer) pos() token.Pos {
	return lex.c.Pos() + token.Pos(lex.i)
}

func (lex *lexer) poser() codefmt.Poser { return codefmt.Pos(lex.pos()) }

func (lex *lexer) eof() bool { return lex.i >= len(lex.c.Text) }

// byte consumes the given byte if it is next.
func (lex *lexer) byte(b byte) bool {
	if lex.eof() || lex.c.Text[lex.i] != b {
		return false
	}
	lex.i++
	return true
}

func (lex *lexer) spaces() {
	for !lex.eof() && (lex.c.Text[lex.i] == ' ' || lex.c.Text[lex.i] == '\t') {
		lex.i++
	}
}

// ident consumes an identifier-like word.
func (lex *lexer) ident() string {
	start := lex.i
	for !lex.eof() {
		b := lex.c.Text[lex.i]
		if 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' || '0' <= b && b <= '9' || b == '_' {
			lex.i++
			continue
		}
		break
	}
	return lex.c.Text[start:lex.i]
}

// stringLit consumes a double-quoted Go string literal.
func (lex *lexer) stringLit() (string, bool) {
	quoted, err := strconv.QuotedPrefix(lex.c.Text[lex.i:])
	if err != nil || quoted[0] != '"' {
		return "", false
	}

	value, err := strconv.Unquote(quoted)
	if err != nil {
		return "", false
	}

	lex.i += len(quoted)
	return value, true
}
