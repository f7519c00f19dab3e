package pdf

import (
	"pdfapi/pkg/config"
)

// Library is the Toolkit backed by gofpdf for writing and by
// ledongthuc/pdf together with pdfcpu for reading.
type Library struct {
	config config.DocumentConfig
}

func NewLibrary(c config.DocumentConfig) *Library {
	c.PopulateUnsetConfigVars()
	return &Library{config: c}
}

func (l *Library) NewDocument() DocumentWriter {
	return newGofpdfWriter(l.config)
}

func (l *Library) ReadDocument(content []byte) (Document, error) {
	doc, err := readDocument(content)
	if err != nil {
		return nil, err
	}
	return doc, nil
}
