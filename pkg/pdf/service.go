package pdf

import (
	"encoding/base64"
	"fmt"

	"pdfapi/pkg/config"
	"pdfapi/pkg/model"
)

// MakePDF decodes the requests and merges them into a single result named
// merged.pdf. An empty or missing list is rejected before a document is
// created.
func MakePDF(assembler *Assembler, requests []model.FileRequest) (model.FileResult, error) {
	if len(requests) == 0 {
		return model.FileResult{}, validationError(ErrNoFiles)
	}

	files, err := DecodeFileRequests(requests)
	if err != nil {
		return model.FileResult{}, err
	}

	merged, err := Merge(assembler, files)
	if err != nil {
		return model.FileResult{}, err
	}

	return model.FileResult{
		FileName:      config.DefaultMergedPDFName,
		Base64Content: base64.StdEncoding.EncodeToString(merged),
	}, nil
}

// Merge assembles already decoded files. An empty list is rejected before a
// document is created.
func Merge(assembler *Assembler, files []model.InputFile) ([]byte, error) {
	if len(files) == 0 {
		return nil, validationError(ErrNoFiles)
	}
	return assembler.Assemble(files)
}

// DisassemblePDF splits the encoded PDF into per-page artifacts.
func DisassemblePDF(disassembler *Disassembler, file model.FileResult) ([]model.FileResult, error) {
	content, err := base64.StdEncoding.DecodeString(file.Base64Content)
	if err != nil {
		return nil, internalError("decode base64 content", err)
	}

	outputs, err := disassembler.Disassemble(file.FileName, content)
	if err != nil {
		return nil, err
	}
	return EncodeOutputFiles(outputs), nil
}

// DecodeFileRequests decodes the base64 content of every request. Requests
// with empty content are kept with empty content so that the assembler
// skips them.
func DecodeFileRequests(requests []model.FileRequest) ([]model.InputFile, error) {
	files := make([]model.InputFile, 0, len(requests))
	for idx, request := range requests {
		file := model.InputFile{Name: request.FileName}
		if request.Base64Content != "" {
			content, err := base64.StdEncoding.DecodeString(request.Base64Content)
			if err != nil {
				return nil, internalError(fmt.Sprintf("decode base64 content of file %d (%s)", idx+1, request.FileName), err)
			}
			file.Content = content
		}
		files = append(files, file)
	}
	return files, nil
}

func EncodeOutputFiles(outputs []model.OutputFile) []model.FileResult {
	results := make([]model.FileResult, 0, len(outputs))
	for _, output := range outputs {
		results = append(results, model.FileResult{
			FileName:      output.Name,
			Base64Content: base64.StdEncoding.EncodeToString(output.Content),
		})
	}
	return results
}
