package pdf

import "testing"

// identityCMap is the ToUnicode program gofpdf writes for UTF-8 fonts.
const identityCMap = "/CIDInit /ProcSet findresource begin\n12 dict begin\nbegincmap\n/CIDSystemInfo\n" +
	"<</Registry (Adobe)\n/Ordering (UCS)\n/Supplement 0\n>> def\n/CMapName /Adobe-Identity-UCS def\n" +
	"/CMapType 2 def\n1 begincodespacerange\n<0000> <FFFF>\nendcodespacerange\n1 beginbfrange\n" +
	"<0000> <FFFF> <0000>\nendbfrange\nendcmap\nCMapName currentdict /CMap defineresource pop\nend\nend"

func TestIdentityCMapKeepsHighByte(t *testing.T) {
	cmap := parseToUnicodeCMap([]byte(identityCMap))

	cases := map[string]string{
		"\x04\x1f":                 "П",
		"\x04\x40\x04\x38":         "ри",
		"\x00H\x00i":               "Hi",
		"\x04\x01\x00 \x04\x51":    "Ё ё",
		"\x00\x41\x04\x10\x00\x42": "AАB",
	}
	for raw, expected := range cases {
		if decoded := cmap.Decode(raw); decoded != expected {
			t.Errorf("Decode(%q): expected %q, got %q", raw, expected, decoded)
		}
	}
}

func TestCMapCharsAndArrays(t *testing.T) {
	program := `
1 begincodespacerange
<00> <FF>
endcodespacerange
2 beginbfchar
<01> <0041>
<02> <00660066>
endbfchar
2 beginbfrange
<10> <12> [<0430> <0431> <0432>]
<20> <22> <00FF>
endbfrange`
	cmap := parseToUnicodeCMap([]byte(program))

	cases := map[string]string{
		"\x01":         "A",
		"\x02":         "ff",
		"\x10\x11\x12": "абв",
		"\x20\x22":     "ÿā",
		"\x05":         "�",
	}
	for raw, expected := range cases {
		if decoded := cmap.Decode(raw); decoded != expected {
			t.Errorf("Decode(%q): expected %q, got %q", raw, expected, decoded)
		}
	}
}

func TestAddToCodeCarries(t *testing.T) {
	cases := []struct {
		code     []byte
		offset   uint32
		expected []byte
	}{
		{[]byte{0x00, 0xFF}, 1, []byte{0x01, 0x00}},
		{[]byte{0x04, 0x10}, 0x0F, []byte{0x04, 0x1F}},
		{[]byte{0x00, 0x00}, 0x041F, []byte{0x04, 0x1F}},
	}
	for _, c := range cases {
		result := addToCode(c.code, c.offset)
		if string(result) != string(c.expected) {
			t.Errorf("addToCode(%x, %d): expected %x, got %x", c.code, c.offset, c.expected, result)
		}
	}
}
