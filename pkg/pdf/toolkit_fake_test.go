package pdf

import (
	"errors"
	"fmt"

	"pdfapi/pkg/sniff"
)

type fakePage struct {
	kind   string
	format sniff.Format
	text   string
	images [][]byte
}

type fakeWriter struct {
	pages   []fakePage
	failOn  int
	written bool
}

func (w *fakeWriter) AddImagePage(content []byte, format sniff.Format) error {
	if w.failOn > 0 && len(w.pages)+1 == w.failOn {
		return errors.New("render failure")
	}
	w.pages = append(w.pages, fakePage{kind: "image", format: format})
	return nil
}

func (w *fakeWriter) AddTextPage(text string) error {
	if w.failOn > 0 && len(w.pages)+1 == w.failOn {
		return errors.New("render failure")
	}
	w.pages = append(w.pages, fakePage{kind: "text", text: text})
	return nil
}

func (w *fakeWriter) PageCount() int {
	return len(w.pages)
}

func (w *fakeWriter) Output() ([]byte, error) {
	w.written = true
	return []byte(fmt.Sprintf("%%PDF fake %d pages", len(w.pages))), nil
}

type fakeDocument struct {
	pages  []fakePage
	closed bool
}

func (d *fakeDocument) PageCount() int {
	return len(d.pages)
}

func (d *fakeDocument) ExtractText(pageNr int) (string, error) {
	return d.pages[pageNr-1].text, nil
}

func (d *fakeDocument) VisitImages(pageNr int, visit ImagePaintFunc) error {
	for _, img := range d.pages[pageNr-1].images {
		if err := visit(PaintedImage{PageNr: pageNr, Content: img}); err != nil {
			return err
		}
	}
	return nil
}

func (d *fakeDocument) Close() error {
	d.closed = true
	return nil
}

type fakeToolkit struct {
	writer  *fakeWriter
	doc     *fakeDocument
	readErr error
}

func (t *fakeToolkit) NewDocument() DocumentWriter {
	if t.writer == nil {
		t.writer = &fakeWriter{}
	}
	return t.writer
}

func (t *fakeToolkit) ReadDocument(content []byte) (Document, error) {
	if t.readErr != nil {
		return nil, t.readErr
	}
	return t.doc, nil
}
