package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"pdfapi/pkg/config"
	"pdfapi/pkg/model"
	"pdfapi/test"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"
)

func newTestLibrary() *Library {
	return NewLibrary(config.DefaultDocumentConfig())
}

func TestAssembledDocumentHasOnePagePerInput(t *testing.T) {
	library := newTestLibrary()
	files := []model.InputFile{
		{Name: "a.jpg", Content: test.GenerateJPEG(40, 20)},
		{Name: "b.txt", Content: []byte("plain text page")},
		{Name: "c.bin", Content: test.GenerateRandomBytes(32)},
		{Name: "empty.txt"},
		{Name: "d.png", Content: test.GeneratePNG(20, 40)},
		{Name: "e.txt", Content: []byte("Привет, мир")},
	}

	merged, err := NewAssembler(library).Assemble(files)
	if err != nil {
		t.Fatalf("Error assembling files: %s", err)
	}
	if !bytes.HasPrefix(merged, []byte("%PDF-")) {
		t.Fatalf("Output is not a PDF document")
	}

	doc, err := library.ReadDocument(merged)
	if err != nil {
		t.Fatalf("Error reading assembled document: %s", err)
	}
	defer doc.Close()

	if doc.PageCount() != len(files)-1 {
		t.Errorf("Expected %d pages, got %d", len(files)-1, doc.PageCount())
	}
}

func TestTextRoundTrip(t *testing.T) {
	library := newTestLibrary()
	cases := []string{
		"The quick brown fox jumps over the lazy dog",
		"Привет, мир! Съешь же ещё этих мягких французских булок, да выпей чаю.",
		"ЁЛКА ёлка Ї ї Є є",
		"first line\n\tsecond line\nтретья строка",
	}

	for _, original := range cases {
		merged, err := NewAssembler(library).Assemble([]model.InputFile{{Name: "note.txt", Content: []byte(original)}})
		if err != nil {
			t.Fatalf("Error assembling %q: %s", original, err)
		}

		outputs, err := NewDisassembler(library).Disassemble("note.pdf", merged)
		if err != nil {
			t.Fatalf("Error disassembling %q: %s", original, err)
		}

		if len(outputs) != 1 || outputs[0].Name != "note_page_1.txt" {
			t.Fatalf("Unexpected outputs %+v", outputs)
		}
		if removeWhitespace(string(outputs[0].Content)) != removeWhitespace(original) {
			t.Errorf("Expected %q, got %q", original, outputs[0].Content)
		}
	}
}

func TestDisassembleKeepsPageOrder(t *testing.T) {
	library := newTestLibrary()
	files := []model.InputFile{
		{Name: "1.txt", Content: []byte("первая страница")},
		{Name: "2.jpg", Content: test.GenerateJPEG(24, 24)},
		{Name: "3.txt", Content: []byte("third page")},
		{Name: "4.png", Content: test.GeneratePNG(16, 32)},
	}

	merged, err := NewAssembler(library).Assemble(files)
	if err != nil {
		t.Fatalf("Error assembling files: %s", err)
	}
	outputs, err := NewDisassembler(library).Disassemble("book.pdf", merged)
	if err != nil {
		t.Fatalf("Error disassembling document: %s", err)
	}

	expectedNames := []string{"book_page_1.txt", "book_page_2.jpg", "book_page_3.txt", "book_page_4.png"}
	if len(outputs) != len(expectedNames) {
		t.Fatalf("Expected %d outputs, got %d", len(expectedNames), len(outputs))
	}
	for idx, name := range expectedNames {
		if outputs[idx].Name != name {
			t.Errorf("Output %d: expected %s, got %s", idx, name, outputs[idx].Name)
		}
	}
	if removeWhitespace(string(outputs[0].Content)) != "перваястраница" {
		t.Errorf("Unexpected first page text %q", outputs[0].Content)
	}
	if removeWhitespace(string(outputs[2].Content)) != "thirdpage" {
		t.Errorf("Unexpected third page text %q", outputs[2].Content)
	}
}

func TestDisassembleSeveralImagesOnOnePage(t *testing.T) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.AddPage()
	for idx, content := range [][]byte{test.GenerateJPEG(20, 20), test.GeneratePNG(20, 10), test.GenerateJPEG(10, 30)} {
		imageType := "JPG"
		if idx == 1 {
			imageType = "PNG"
		}
		name := fmt.Sprintf("img%d", idx)
		options := gofpdf.ImageOptions{ImageType: imageType}
		pdf.RegisterImageOptionsReader(name, options, bytes.NewReader(content))
		pdf.ImageOptions(name, float64(10+idx*100), 10, 80, 80, false, options, 0, "")
	}
	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		t.Fatalf("Error writing document: %s", err)
	}

	outputs, err := NewDisassembler(newTestLibrary()).Disassemble("gallery.pdf", buf.Bytes())
	if err != nil {
		t.Fatalf("Error disassembling document: %s", err)
	}

	expectedNames := []string{"gallery_page_1.jpg", "gallery_page_1_2.png", "gallery_page_1_3.jpg"}
	if len(outputs) != len(expectedNames) {
		t.Fatalf("Expected %d outputs, got %+v", len(expectedNames), outputs)
	}
	for idx, name := range expectedNames {
		if outputs[idx].Name != name {
			t.Errorf("Output %d: expected %s, got %s", idx, name, outputs[idx].Name)
		}
	}
}

func TestDisassembleImageInsideForm(t *testing.T) {
	jpeg := test.GenerateJPEG(30, 30)
	doc := singlePagePDF("<< /XObject << /Fm1 5 0 R >> >>", "q 100 0 0 100 0 0 cm /Fm1 Do Q",
		rawObject{
			dict:   "/Type /XObject /Subtype /Form /BBox [0 0 1 1] /Resources << /XObject << /Im1 6 0 R >> >>",
			stream: []byte("q 1 0 0 1 0 0 cm /Im1 Do Q"),
		},
		jpegImageObject(jpeg, 30, 30),
	)

	outputs, err := NewDisassembler(newTestLibrary()).Disassemble("form.pdf", doc)
	if err != nil {
		t.Fatalf("Error disassembling document: %s", err)
	}
	if len(outputs) != 1 || outputs[0].Name != "form_page_1.jpg" {
		t.Fatalf("Unexpected outputs %+v", outputs)
	}
	if !bytes.Equal(outputs[0].Content, jpeg) {
		t.Errorf("Extracted image differs from the embedded JPEG")
	}
}

func TestDisassembleIdenticalImagesUnderTwoNames(t *testing.T) {
	jpeg := test.GenerateJPEG(30, 30)
	doc := singlePagePDF("<< /XObject << /Im1 5 0 R /Im2 6 0 R >> >>",
		"q 50 0 0 50 0 0 cm /Im1 Do Q q 50 0 0 50 100 0 cm /Im2 Do Q",
		jpegImageObject(jpeg, 30, 30),
		jpegImageObject(jpeg, 30, 30),
	)

	outputs, err := NewDisassembler(newTestLibrary()).Disassemble("twins.pdf", doc)
	if err != nil {
		t.Fatalf("Error disassembling document: %s", err)
	}
	if len(outputs) != 2 || outputs[0].Name != "twins_page_1.jpg" || outputs[1].Name != "twins_page_1_2.jpg" {
		t.Fatalf("Unexpected outputs %+v", outputs)
	}
}

func TestAssembleSixteenBitPNG(t *testing.T) {
	library := newTestLibrary()
	merged, err := NewAssembler(library).Assemble([]model.InputFile{{Name: "deep.png", Content: test.GeneratePNG16(20, 20)}})
	if err != nil {
		t.Fatalf("Error assembling 16-bit PNG: %s", err)
	}

	outputs, err := NewDisassembler(library).Disassemble("deep.pdf", merged)
	if err != nil {
		t.Fatalf("Error disassembling document: %s", err)
	}
	if len(outputs) != 1 || outputs[0].Name != "deep_page_1.png" {
		t.Fatalf("Unexpected outputs %+v", outputs)
	}
}

func TestImageRoundTrip(t *testing.T) {
	library := newTestLibrary()
	jpeg := test.GenerateJPEG(30, 30)

	merged, err := NewAssembler(library).Assemble([]model.InputFile{{Name: "photo.jpg", Content: jpeg}})
	if err != nil {
		t.Fatalf("Error assembling files: %s", err)
	}

	outputs, err := NewDisassembler(library).Disassemble("photo.pdf", merged)
	if err != nil {
		t.Fatalf("Error disassembling document: %s", err)
	}

	if len(outputs) != 1 {
		t.Fatalf("Expected 1 output, got %d", len(outputs))
	}
	if outputs[0].Name != "photo_page_1.jpg" {
		t.Errorf("Expected photo_page_1.jpg, got %s", outputs[0].Name)
	}
	if !bytes.HasPrefix(outputs[0].Content, []byte{0xFF, 0xD8}) {
		t.Errorf("Extracted image is not a JPEG")
	}
}

func TestDisassembleBlankDocument(t *testing.T) {
	library := newTestLibrary()
	writer := library.NewDocument()
	if err := writer.AddTextPage(" "); err != nil {
		t.Fatalf("Error adding page: %s", err)
	}
	blank, err := writer.Output()
	if err != nil {
		t.Fatalf("Error writing document: %s", err)
	}

	_, err = NewDisassembler(library).Disassemble("blank.pdf", blank)
	if !errors.Is(err, ErrNoContent) {
		t.Errorf("Expected ErrNoContent, got %v", err)
	}
}

func TestReadDocumentRejectsGarbage(t *testing.T) {
	_, err := newTestLibrary().ReadDocument(test.GenerateRandomBytes(256))
	if err == nil {
		t.Errorf("Expected an error reading random bytes")
	}
}

func TestFitToBox(t *testing.T) {
	cases := []struct {
		w, h, maxW, maxH, expW, expH float64
	}{
		{100, 50, 500, 500, 500, 250},
		{1000, 2000, 500, 500, 250, 500},
		{10, 10, 100, 50, 50, 50},
	}
	for _, c := range cases {
		w, h := fitToBox(c.w, c.h, c.maxW, c.maxH)
		if w != c.expW || h != c.expH {
			t.Errorf("fitToBox(%v, %v): expected %vx%v, got %vx%v", c.w, c.h, c.expW, c.expH, w, h)
		}
	}
}

func removeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
