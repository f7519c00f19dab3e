// Package sniff classifies raw file contents by their leading bytes and
// character ranges.
package sniff

import (
	"bytes"
	"unicode"
	"unicode/utf8"
)

type Kind int

const (
	Unknown Kind = iota
	Image
	Text
)

// Extension is the descriptive label used in reports and placeholder pages.
func (k Kind) Extension() string {
	switch k {
	case Image:
		return "image"
	case Text:
		return "txt"
	default:
		return "unknown"
	}
}

func (k Kind) String() string {
	return k.Extension()
}

type Format int

const (
	None Format = iota
	JPEG
	PNG
	GIF
)

var (
	jpegSignature  = []byte{0xFF, 0xD8}
	pngSignature   = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	gif87Signature = []byte("GIF87a")
	gif89Signature = []byte("GIF89a")
)

// Extension returns the file extension for the format, including the dot.
func (f Format) Extension() string {
	switch f {
	case JPEG:
		return ".jpg"
	case PNG:
		return ".png"
	case GIF:
		return ".gif"
	default:
		return ""
	}
}

func (f Format) String() string {
	switch f {
	case JPEG:
		return "JPG"
	case PNG:
		return "PNG"
	case GIF:
		return "GIF"
	default:
		return ""
	}
}

// ImageFormat matches the buffer against the supported image signatures.
// Only the signature is checked, dimensions and integrity are not.
func ImageFormat(b []byte) Format {
	if len(b) < 4 {
		return None
	}
	switch {
	case bytes.HasPrefix(b, jpegSignature):
		return JPEG
	case bytes.HasPrefix(b, pngSignature):
		return PNG
	case bytes.HasPrefix(b, gif87Signature), bytes.HasPrefix(b, gif89Signature):
		return GIF
	}
	return None
}

func IsImage(b []byte) bool {
	return ImageFormat(b) != None
}

// IsText reports whether b is valid UTF-8 made only of control characters,
// printable ASCII and the Cyrillic block. Any other rune disqualifies it.
func IsText(b []byte) bool {
	if !utf8.Valid(b) {
		return false
	}
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		b = b[size:]
		if !isTextRune(r) {
			return false
		}
	}
	return true
}

func isTextRune(r rune) bool {
	return unicode.IsControl(r) ||
		(r >= ' ' && r <= '~') ||
		(r >= '\u0400' && r <= '\u04FF')
}

func Classify(b []byte) Kind {
	if IsImage(b) {
		return Image
	}
	if IsText(b) {
		return Text
	}
	return Unknown
}
