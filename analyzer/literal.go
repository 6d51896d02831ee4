package analyzer

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
)

// stringLiteral returns the decoded value of a quoted string literal
func stringLiteral(n *sitter.Node, src []byte) (string, bool) {
	n = unwrap(n)
	if n.Type() != nodeString {
		return "", false
	}
	raw := n.Content(src)
	if len(raw) < 2 {
		return "", false
	}
	return unescape(raw[1 : len(raw)-1]), true
}

// unescape decodes JavaScript string escape sequences; malformed escapes keep the escaped character
func unescape(raw string) string {
	if !strings.Contains(raw, `\`) {
		return raw
	}
	var units []rune
	builder := strings.Builder{}
	flush := func() {
		if len(units) > 0 {
			builder.WriteString(string(utf16.Decode(toUint16(units))))
			units = units[:0]
		}
	}
	for i := 0; i < len(raw); {
		if raw[i] != '\\' || i+1 == len(raw) {
			flush()
			r, size := utf8.DecodeRuneInString(raw[i:])
			builder.WriteRune(r)
			i += size
			continue
		}
		i++
		switch c := raw[i]; c {
		case 'n', 't', 'r', 'b', 'f', 'v':
			flush()
			builder.WriteByte(singleEscapes[c])
			i++
		case '0':
			flush()
			builder.WriteByte(0)
			i++
		case '\n':
			i++
		case '\r':
			i++
			if i < len(raw) && raw[i] == '\n' {
				i++
			}
		case 'x':
			if code, ok := parseHex(raw, i+1, 2); ok {
				flush()
				builder.WriteRune(rune(code))
				i += 3
				continue
			}
			flush()
			builder.WriteByte(c)
			i++
		case 'u':
			if i+1 < len(raw) && raw[i+1] == '{' {
				if end := strings.IndexByte(raw[i:], '}'); end > 2 {
					if code, err := strconv.ParseUint(raw[i+2:i+end], 16, 32); err == nil {
						flush()
						builder.WriteRune(rune(code))
						i += end + 1
						continue
					}
				}
			} else if code, ok := parseHex(raw, i+1, 4); ok {
				// surrogate halves are collected and decoded together
				units = append(units, rune(code))
				i += 5
				continue
			}
			flush()
			builder.WriteByte(c)
			i++
		default:
			flush()
			r, size := utf8.DecodeRuneInString(raw[i:])
			if r == '\u2028' || r == '\u2029' {
				i += size
				continue
			}
			builder.WriteRune(r)
			i += size
		}
	}
	flush()
	return builder.String()
}

var singleEscapes = map[byte]byte{'n': '\n', 't': '\t', 'r': '\r', 'b': '\b', 'f': '\f', 'v': '\v'}

func parseHex(raw string, from, digits int) (uint64, bool) {
	if from+digits > len(raw) {
		return 0, false
	}
	code, err := strconv.ParseUint(raw[from:from+digits], 16, 32)
	return code, err == nil
}

func toUint16(runes []rune) []uint16 {
	ret := make([]uint16, len(runes))
	for i, r := range runes {
		ret[i] = uint16(r)
	}
	return ret
}
