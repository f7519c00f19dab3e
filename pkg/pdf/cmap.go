package pdf

import (
	"bytes"
	"io"
	"sort"
	"strings"
	"unicode"
	"unicode/utf16"

	lpdf "github.com/ledongthuc/pdf"
)

type codeSpace struct {
	lo, hi uint32
	width  int
}

// bfRange maps codes lo..hi either to consecutive UTF-16 values starting at
// dst, or to the entries of dsts.
type bfRange struct {
	lo, hi uint32
	width  int
	dst    []byte
	dsts   []string
}

// toUnicodeCMap decodes strings shown with a font that carries a ToUnicode
// CMap. Range offsets are applied to the whole destination value, so codes
// above 0xFF keep their high byte.
type toUnicodeCMap struct {
	spaces []codeSpace
	chars  map[string]string
	ranges []bfRange
	widths []int
}

func readToUnicodeCMap(strm lpdf.Value) (m *toUnicodeCMap, err error) {
	defer recoverError("read ToUnicode cmap", &err)

	rd := strm.Reader()
	defer rd.Close()
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, err
	}
	return parseToUnicodeCMap(data), nil
}

// cmapToken is a hex string, an array of hex strings or a bare word.
type cmapToken struct {
	hex   []byte
	array [][]byte
	word  string
}

func parseToUnicodeCMap(data []byte) *toUnicodeCMap {
	m := &toUnicodeCMap{chars: make(map[string]string)}
	var operands []cmapToken
	for _, tok := range tokenizeCMap(data) {
		if tok.word == "" {
			operands = append(operands, tok)
			continue
		}
		switch tok.word {
		case "endcodespacerange":
			for i := 0; i+1 < len(operands); i += 2 {
				lo, hi := operands[i].hex, operands[i+1].hex
				if validCode(lo, hi) {
					m.spaces = append(m.spaces, codeSpace{lo: codeValue(lo), hi: codeValue(hi), width: len(lo)})
				}
			}
		case "endbfchar":
			for i := 0; i+1 < len(operands); i += 2 {
				if src := operands[i].hex; len(src) > 0 {
					m.chars[string(src)] = decodeUTF16BE(string(operands[i+1].hex))
				}
			}
		case "endbfrange":
			for i := 0; i+2 < len(operands); i += 3 {
				lo, hi := operands[i].hex, operands[i+1].hex
				if !validCode(lo, hi) {
					continue
				}
				r := bfRange{lo: codeValue(lo), hi: codeValue(hi), width: len(lo)}
				if dst := operands[i+2]; dst.array != nil {
					for _, d := range dst.array {
						r.dsts = append(r.dsts, decodeUTF16BE(string(d)))
					}
				} else {
					r.dst = dst.hex
				}
				m.ranges = append(m.ranges, r)
			}
		}
		operands = operands[:0]
	}

	m.collectWidths()
	return m
}

func validCode(lo, hi []byte) bool {
	return len(lo) > 0 && len(lo) == len(hi) && len(lo) <= 4
}

// tokenizeCMap splits a CMap program into the tokens needed to read its
// code space and bf mappings. Dictionaries, names and literal strings are
// reduced to words.
func tokenizeCMap(data []byte) []cmapToken {
	var tokens []cmapToken
	var array [][]byte
	inArray := false
	for i := 0; i < len(data); {
		c := data[i]
		switch {
		case c == '%':
			for i < len(data) && data[i] != '\n' && data[i] != '\r' {
				i++
			}
		case c == '<' && i+1 < len(data) && data[i+1] == '<', c == '>' && i+1 < len(data) && data[i+1] == '>':
			i += 2
		case c == '<':
			end := bytes.IndexByte(data[i:], '>')
			if end < 0 {
				return tokens
			}
			hex := hexBytes(data[i+1 : i+end])
			if inArray {
				array = append(array, hex)
			} else {
				tokens = append(tokens, cmapToken{hex: hex})
			}
			i += end + 1
		case c == '[':
			inArray, array = true, [][]byte{}
			i++
		case c == ']':
			if inArray {
				tokens = append(tokens, cmapToken{array: array})
			}
			inArray = false
			i++
		case c == '(':
			depth := 0
			for ; i < len(data); i++ {
				if data[i] == '\\' {
					i++
					continue
				}
				if data[i] == '(' {
					depth++
				} else if data[i] == ')' {
					if depth--; depth == 0 {
						i++
						break
					}
				}
			}
		case isCMapSpace(c):
			i++
		default:
			start := i
			for i < len(data) && !isCMapSpace(data[i]) && strings.IndexByte("<>[]()%/", data[i]) < 0 {
				i++
			}
			if i == start {
				// a name start, skip the solidus
				i++
				continue
			}
			tokens = append(tokens, cmapToken{word: string(data[start:i])})
		}
	}
	return tokens
}

func isCMapSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == 0
}

func hexBytes(s []byte) []byte {
	digits := make([]byte, 0, len(s))
	for _, c := range s {
		if _, ok := hexDigit(c); ok {
			digits = append(digits, c)
		}
	}
	if len(digits)%2 == 1 {
		digits = append(digits, '0')
	}
	out := make([]byte, len(digits)/2)
	for i := range out {
		hi, _ := hexDigit(digits[2*i])
		lo, _ := hexDigit(digits[2*i+1])
		out[i] = hi<<4 | lo
	}
	return out
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func (m *toUnicodeCMap) collectWidths() {
	seen := make(map[int]bool)
	for _, s := range m.spaces {
		seen[s.width] = true
	}
	if len(seen) == 0 {
		for code := range m.chars {
			seen[len(code)] = true
		}
		for _, r := range m.ranges {
			seen[r.width] = true
		}
	}
	for w := range seen {
		m.widths = append(m.widths, w)
	}
	sort.Ints(m.widths)
}

func (m *toUnicodeCMap) Decode(raw string) string {
	var out strings.Builder
	for len(raw) > 0 {
		n := m.codeWidth(raw)
		if n == 0 {
			out.WriteRune(unicode.ReplacementChar)
			raw = raw[1:]
			continue
		}
		out.WriteString(m.lookup(raw[:n]))
		raw = raw[n:]
	}
	return out.String()
}

// codeWidth returns the byte length of the code at the start of raw, 0 when
// no code space matches.
func (m *toUnicodeCMap) codeWidth(raw string) int {
	for _, w := range m.widths {
		if w > len(raw) {
			break
		}
		if len(m.spaces) == 0 {
			if _, found := m.chars[raw[:w]]; found {
				return w
			}
			if m.inRange(raw[:w]) {
				return w
			}
			continue
		}
		v := codeValue([]byte(raw[:w]))
		for _, s := range m.spaces {
			if s.width == w && s.lo <= v && v <= s.hi {
				return w
			}
		}
	}
	return 0
}

func (m *toUnicodeCMap) inRange(code string) bool {
	v := codeValue([]byte(code))
	for _, r := range m.ranges {
		if r.width == len(code) && r.lo <= v && v <= r.hi {
			return true
		}
	}
	return false
}

func (m *toUnicodeCMap) lookup(code string) string {
	if s, found := m.chars[code]; found {
		return s
	}
	v := codeValue([]byte(code))
	for _, r := range m.ranges {
		if r.width != len(code) || v < r.lo || r.hi < v {
			continue
		}
		offset := v - r.lo
		if r.dsts != nil {
			if int(offset) < len(r.dsts) {
				return r.dsts[offset]
			}
			return string(unicode.ReplacementChar)
		}
		return decodeUTF16BE(string(addToCode(r.dst, offset)))
	}
	return string(unicode.ReplacementChar)
}

func codeValue(code []byte) uint32 {
	var v uint32
	for i := 0; i < len(code); i++ {
		v = v<<8 | uint32(code[i])
	}
	return v
}

// addToCode adds offset to the big-endian value held in b, carrying across
// bytes.
func addToCode(b []byte, offset uint32) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	carry := offset
	for i := len(out) - 1; i >= 0 && carry > 0; i-- {
		sum := uint32(out[i]) + carry&0xFF
		out[i] = byte(sum)
		carry = carry>>8 + sum>>8
	}
	return out
}

func decodeUTF16BE(s string) string {
	if len(s)%2 != 0 {
		s = s[:len(s)-1]
	}
	units := make([]uint16, len(s)/2)
	for i := range units {
		units[i] = uint16(s[2*i])<<8 | uint16(s[2*i+1])
	}
	return string(utf16.Decode(units))
}
