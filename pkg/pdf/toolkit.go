// Package pdf builds merged PDF documents from loose files and splits PDF
// documents back into per-page text and image artifacts.
//
// All PDF parsing and rendering goes through the Toolkit interface; the
// Library type implements it on top of gofpdf, ledongthuc/pdf and pdfcpu.
package pdf

import "pdfapi/pkg/sniff"

// DocumentWriter accumulates pages of a new document.
type DocumentWriter interface {
	// AddImagePage adds a page holding the image scaled to fit the page.
	AddImagePage(content []byte, format sniff.Format) error
	// AddTextPage adds a page with text laid out as one flowing paragraph.
	AddTextPage(text string) error
	PageCount() int
	Output() ([]byte, error)
}

// Document is a parsed PDF. Page numbers are 1-based.
type Document interface {
	PageCount() int
	ExtractText(pageNr int) (string, error)
	// VisitImages calls visit once per image paint operation on the page,
	// in paint order.
	VisitImages(pageNr int, visit ImagePaintFunc) error
	Close() error
}

type Toolkit interface {
	NewDocument() DocumentWriter
	ReadDocument(content []byte) (Document, error)
}

// PaintedImage is the payload of an image paint event.
type PaintedImage struct {
	PageNr  int
	Content []byte
}

type ImagePaintFunc func(img PaintedImage) error
