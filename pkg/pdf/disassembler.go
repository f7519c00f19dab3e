package pdf

import (
	"fmt"
	"path"
	"strings"
	"time"

	"pdfapi/pkg/config"
	"pdfapi/pkg/model"
	"pdfapi/pkg/sniff"
)

var supportedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

const defaultImageExtension = ".png"

// Disassembler splits a document into one text artifact per page with
// text, or one artifact per painted image on pages without text.
type Disassembler struct {
	toolkit Toolkit
	stats   model.DisassembleStats
}

func NewDisassembler(toolkit Toolkit) *Disassembler {
	return &Disassembler{toolkit: toolkit}
}

func (d *Disassembler) Disassemble(fileName string, content []byte) ([]model.OutputFile, error) {
	if fileName == "" {
		fileName = config.DefaultDocumentName
	}
	baseName, sourceExt := splitFileName(fileName)

	start := time.Now()
	doc, err := d.toolkit.ReadDocument(content)
	if err != nil {
		return nil, internalError("read document", err)
	}
	defer doc.Close()
	d.stats.Reading = time.Since(start)
	d.stats.PageCount = doc.PageCount()

	start = time.Now()
	var outputs []model.OutputFile
	for pageNr := 1; pageNr <= doc.PageCount(); pageNr++ {
		pageOutputs, err := d.disassemblePage(doc, pageNr, baseName, sourceExt)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, pageOutputs...)
	}
	d.stats.Extraction = time.Since(start)

	if len(outputs) == 0 {
		return nil, validationError(ErrNoContent)
	}
	return outputs, nil
}

func (d *Disassembler) Stats() model.DisassembleStats {
	return d.stats
}

func (d *Disassembler) disassemblePage(doc Document, pageNr int, baseName, sourceExt string) ([]model.OutputFile, error) {
	text, err := doc.ExtractText(pageNr)
	if err != nil {
		return nil, internalError(fmt.Sprintf("extract text from page %d", pageNr), err)
	}
	if strings.TrimSpace(text) != "" {
		d.stats.TextPages++
		return []model.OutputFile{{
			Name:    fmt.Sprintf("%s_page_%d.txt", baseName, pageNr),
			Content: []byte(text),
		}}, nil
	}

	collector := imageCollector{baseName: baseName, sourceExt: sourceExt}
	if err = doc.VisitImages(pageNr, collector.collect); err != nil {
		return nil, internalError(fmt.Sprintf("extract images from page %d", pageNr), err)
	}

	if len(collector.outputs) == 0 {
		d.stats.EmptyPages++
	} else {
		d.stats.ImagePages++
	}
	return collector.outputs, nil
}

// imageCollector receives the image paint events of a single page.
type imageCollector struct {
	baseName  string
	sourceExt string
	outputs   []model.OutputFile
}

func (c *imageCollector) collect(img PaintedImage) error {
	if len(img.Content) == 0 {
		return nil
	}

	name := fmt.Sprintf("%s_page_%d", c.baseName, img.PageNr)
	if n := len(c.outputs); n > 0 {
		name = fmt.Sprintf("%s_%d", name, n+1)
	}
	c.outputs = append(c.outputs, model.OutputFile{
		Name:    name + imageExtension(img.Content, c.sourceExt),
		Content: img.Content,
	})
	return nil
}

// imageExtension labels extracted bytes by their signature. Without a known
// signature the source document extension is used when it names an image,
// otherwise ".png".
func imageExtension(content []byte, sourceExt string) string {
	if ext := sniff.ImageFormat(content).Extension(); ext != "" {
		return ext
	}
	if supportedImageExtensions[sourceExt] {
		return sourceExt
	}
	return defaultImageExtension
}

// splitFileName returns the file name without directory and extension, and
// the lower-cased extension.
func splitFileName(fileName string) (string, string) {
	base := path.Base(strings.ReplaceAll(fileName, `\`, "/"))
	ext := path.Ext(base)
	return strings.TrimSuffix(base, ext), strings.ToLower(ext)
}
