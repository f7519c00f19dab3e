package sniff

import (
	"pdfapi/test"
	"testing"
)

func TestClassifyImageSignatures(t *testing.T) {
	signatures := map[string][]byte{
		"jpeg":   {0xFF, 0xD8, 0xFF, 0xE0, 0x00},
		"png":    {0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00},
		"gif87a": []byte("GIF87a\x01\x00"),
		"gif89a": []byte("GIF89a\x01\x00"),
	}

	for name, signature := range signatures {
		if kind := Classify(signature); kind != Image {
			t.Errorf("Expected %s signature to classify as image, got %s", name, kind)
		}
	}
}

func TestClassifyGeneratedImages(t *testing.T) {
	images := map[Format][]byte{
		JPEG: test.GenerateJPEG(8, 8),
		PNG:  test.GeneratePNG(8, 8),
		GIF:  test.GenerateGIF(8, 8),
	}

	for expectedFormat, img := range images {
		if format := ImageFormat(img); format != expectedFormat {
			t.Errorf("Expected format %s, got %s", expectedFormat, format)
		}
		if Classify(img) != Image {
			t.Errorf("Generated %s was not classified as an image", expectedFormat)
		}
	}
}

func TestShortBufferIsNeverImage(t *testing.T) {
	if IsImage([]byte{0xFF, 0xD8, 0xFF}) {
		t.Errorf("Buffer shorter than 4 bytes must not be an image")
	}
	// three bytes of JPEG SOI are still valid text? 0xFF is invalid UTF-8
	if kind := Classify([]byte{0xFF, 0xD8, 0xFF}); kind != Unknown {
		t.Errorf("Expected unknown, got %s", kind)
	}
}

func TestClassifyText(t *testing.T) {
	texts := []string{
		"Hello, world!",
		"line one\nline two\r\n\ttabbed",
		"Привет, мир",
		"Mixed ASCII и кириллица 123 ~",
		"",
	}

	for _, text := range texts {
		if kind := Classify([]byte(text)); kind != Text {
			t.Errorf("Expected %q to classify as text, got %s", text, kind)
		}
	}
}

func TestClassifyUnknown(t *testing.T) {
	buffers := map[string][]byte{
		"latin-1 supplement": []byte("café"),
		"y with diaeresis":   []byte("ÿ"),
		"cjk":                []byte("日本語"),
		"emoji":              []byte("ok \U0001F600"),
		"invalid utf-8":      {0xC3, 0x28, 0x41, 0x42},
		"lone 0xFF":          {0x41, 0xFF, 0x42, 0x43},
	}

	for name, buf := range buffers {
		if kind := Classify(buf); kind != Unknown {
			t.Errorf("Expected %s to classify as unknown, got %s", name, kind)
		}
	}
}

func TestClassifyRandomBinaryNeverPanics(t *testing.T) {
	for i := 0; i < 100; i++ {
		buf := test.GenerateRandomBytes(64 + i)
		kind := Classify(buf)
		if kind == Text && !IsText(buf) {
			t.Errorf("Inconsistent classification for random buffer %d", i)
		}
	}
}

func TestKindExtension(t *testing.T) {
	expected := map[Kind]string{Image: "image", Text: "txt", Unknown: "unknown"}
	for kind, ext := range expected {
		if kind.Extension() != ext {
			t.Errorf("Expected extension %s, got %s", ext, kind.Extension())
		}
	}
}
