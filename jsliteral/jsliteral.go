// Package jsliteral parses JavaScript object and array literals into
// plain Go values without executing any code. Marketplace pages embed
// product variation data as a script-literal assignment, which is not
// strict JSON: keys may be unquoted, strings may be single-quoted, and
// trailing commas are allowed. A restricted recursive-descent parser
// recovers the data while avoiding the unbounded execution risk of a
// general-purpose evaluator.
package jsliteral

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/scrapeworks/prodex"
)

// Parse parses a single JavaScript literal expression. Objects decode
// to map[string]any, arrays to []any, numbers to float64, and null and
// undefined to nil. Trailing input after the literal is rejected.
func Parse(src string) (any, error) {
	p := &parser{src: src}
	p.skipSpace()
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, p.errorf("unexpected trailing input at offset %d", p.pos)
	}
	return v, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) errorf(format string, args ...any) error {
	return prodex.Errorf(prodex.EINVALID, "js literal: "+format, args...)
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch c := p.src[p.pos]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			p.pos++
		case c == '/' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '/':
			for p.pos < len(p.src) && p.src[p.pos] != '\n' {
				p.pos++
			}
		case c == '/' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '*':
			end := strings.Index(p.src[p.pos+2:], "*/")
			if end < 0 {
				p.pos = len(p.src)
				return
			}
			p.pos += 2 + end + 2
		default:
			return
		}
	}
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *parser) parseValue() (any, error) {
	c, ok := p.peek()
	if !ok {
		return nil, p.errorf("unexpected end of input")
	}
	switch {
	case c == '{':
		return p.parseObject()
	case c == '[':
		return p.parseArray()
	case c == '"' || c == '\'':
		return p.parseString()
	case c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	default:
		return p.parseWord()
	}
}

func (p *parser) parseObject() (map[string]any, error) {
	p.pos++ // consume '{'
	obj := map[string]any{}
	p.skipSpace()
	if c, ok := p.peek(); ok && c == '}' {
		p.pos++
		return obj, nil
	}
	for {
		p.skipSpace()
		key, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if c, ok := p.peek(); !ok || c != ':' {
			return nil, p.errorf("expected ':' after key %q", key)
		}
		p.pos++
		p.skipSpace()
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj[key] = val
		p.skipSpace()
		c, ok := p.peek()
		switch {
		case !ok:
			return nil, p.errorf("unterminated object")
		case c == ',':
			p.pos++
			p.skipSpace()
			// trailing comma
			if c, ok := p.peek(); ok && c == '}' {
				p.pos++
				return obj, nil
			}
		case c == '}':
			p.pos++
			return obj, nil
		default:
			return nil, p.errorf("unexpected character %q in object", c)
		}
	}
}

func (p *parser) parseArray() ([]any, error) {
	p.pos++ // consume '['
	arr := []any{}
	p.skipSpace()
	if c, ok := p.peek(); ok && c == ']' {
		p.pos++
		return arr, nil
	}
	for {
		p.skipSpace()
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)
		p.skipSpace()
		c, ok := p.peek()
		switch {
		case !ok:
			return nil, p.errorf("unterminated array")
		case c == ',':
			p.pos++
			p.skipSpace()
			if c, ok := p.peek(); ok && c == ']' {
				p.pos++
				return arr, nil
			}
		case c == ']':
			p.pos++
			return arr, nil
		default:
			return nil, p.errorf("unexpected character %q in array", c)
		}
	}
}

// parseKey accepts a quoted string or a bare identifier.
func (p *parser) parseKey() (string, error) {
	c, ok := p.peek()
	if !ok {
		return "", p.errorf("unexpected end of input in object key")
	}
	if c == '"' || c == '\'' {
		return p.parseString()
	}
	start := p.pos
	for p.pos < len(p.src) && isIdentChar(rune(p.src[p.pos])) {
		p.pos++
	}
	if p.pos == start {
		return "", p.errorf("invalid object key at offset %d", p.pos)
	}
	return p.src[start:p.pos], nil
}

func (p *parser) parseString() (string, error) {
	quote := p.src[p.pos]
	p.pos++
	var b strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch c {
		case quote:
			p.pos++
			return b.String(), nil
		case '\\':
			if p.pos+1 >= len(p.src) {
				return "", p.errorf("unterminated escape sequence")
			}
			esc := p.src[p.pos+1]
			p.pos += 2
			switch esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case 'u':
				r, err := p.parseUnicodeEscape()
				if err != nil {
					return "", err
				}
				b.WriteRune(r)
			case 'x':
				if p.pos+2 > len(p.src) {
					return "", p.errorf("unterminated hex escape")
				}
				n, err := strconv.ParseUint(p.src[p.pos:p.pos+2], 16, 8)
				if err != nil {
					return "", p.errorf("invalid hex escape")
				}
				p.pos += 2
				b.WriteRune(rune(n))
			default:
				// \" \' \\ \/ and anything else escape to themselves
				b.WriteByte(esc)
			}
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	return "", p.errorf("unterminated string")
}

// parseUnicodeEscape reads the 4 hex digits after \u, combining
// surrogate pairs when a second \u escape follows.
func (p *parser) parseUnicodeEscape() (rune, error) {
	if p.pos+4 > len(p.src) {
		return 0, p.errorf("unterminated unicode escape")
	}
	n, err := strconv.ParseUint(p.src[p.pos:p.pos+4], 16, 32)
	if err != nil {
		return 0, p.errorf("invalid unicode escape")
	}
	p.pos += 4
	r := rune(n)
	if utf16.IsSurrogate(r) && p.pos+6 <= len(p.src) && p.src[p.pos] == '\\' && p.src[p.pos+1] == 'u' {
		n2, err := strconv.ParseUint(p.src[p.pos+2:p.pos+6], 16, 32)
		if err == nil {
			if combined := utf16.DecodeRune(r, rune(n2)); combined != unicode.ReplacementChar {
				p.pos += 6
				return combined, nil
			}
		}
	}
	return r, nil
}

func (p *parser) parseNumber() (float64, error) {
	start := p.pos
	if c, ok := p.peek(); ok && (c == '-' || c == '+') {
		p.pos++
	}
	seenDigit := false
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c >= '0' && c <= '9' {
			seenDigit = true
			p.pos++
		} else if c == '.' || c == 'e' || c == 'E' ||
			((c == '-' || c == '+') && (p.src[p.pos-1] == 'e' || p.src[p.pos-1] == 'E')) {
			p.pos++
		} else {
			break
		}
	}
	if !seenDigit {
		return 0, p.errorf("invalid number at offset %d", start)
	}
	f, err := strconv.ParseFloat(strings.TrimPrefix(p.src[start:p.pos], "+"), 64)
	if err != nil {
		return 0, p.errorf("invalid number %q", p.src[start:p.pos])
	}
	return f, nil
}

func (p *parser) parseWord() (any, error) {
	start := p.pos
	for p.pos < len(p.src) && isIdentChar(rune(p.src[p.pos])) {
		p.pos++
	}
	switch word := p.src[start:p.pos]; word {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "null", "undefined":
		return nil, nil
	default:
		return nil, p.errorf("unexpected token %q at offset %d", word, start)
	}
}

func isIdentChar(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
