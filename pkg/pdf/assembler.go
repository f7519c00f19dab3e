package pdf

import (
	"fmt"
	"time"

	"pdfapi/pkg/model"
	"pdfapi/pkg/sniff"
)

// Assembler merges files into a single document, one page per file.
type Assembler struct {
	toolkit Toolkit
	stats   model.AssembleStats
}

func NewAssembler(toolkit Toolkit) *Assembler {
	return &Assembler{toolkit: toolkit}
}

// Assemble renders files in order. Files without content are skipped and
// produce no page. Images are scaled onto their own page, text is laid out
// as a paragraph and anything else gets a placeholder page.
func (a *Assembler) Assemble(files []model.InputFile) ([]byte, error) {
	start := time.Now()
	writer := a.toolkit.NewDocument()

	for idx, file := range files {
		if len(file.Content) == 0 {
			a.stats.InputsSkipped++
			continue
		}
		if err := addPage(writer, file.Content); err != nil {
			return nil, internalError(fmt.Sprintf("render file %d (%s)", idx+1, file.Name), err)
		}
	}

	output, err := writer.Output()
	if err != nil {
		return nil, internalError("write document", err)
	}

	a.stats.PagesWritten = writer.PageCount()
	a.stats.OutputSize = len(output)
	a.stats.Rendering = time.Since(start)
	return output, nil
}

func (a *Assembler) Stats() model.AssembleStats {
	return a.stats
}

func addPage(writer DocumentWriter, content []byte) error {
	kind := sniff.Classify(content)
	switch kind {
	case sniff.Image:
		return writer.AddImagePage(content, sniff.ImageFormat(content))
	case sniff.Text:
		return writer.AddTextPage(string(content))
	default:
		return writer.AddTextPage(UnsupportedFileMessage(kind))
	}
}

// UnsupportedFileMessage is the text of the placeholder page for files that
// are neither images nor text.
func UnsupportedFileMessage(kind sniff.Kind) string {
	return fmt.Sprintf("File of type %s is not supported for display.", kind.Extension())
}
