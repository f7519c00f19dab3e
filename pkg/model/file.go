package model

// FileRequest is a single input for PDF assembly.
type FileRequest struct {
	FileName      string `json:"fileName"`
	Base64Content string `json:"base64Content"`
}

// FileResult is an output artifact. It is also the input shape of
// disassembly, where it carries the PDF to split.
type FileResult struct {
	FileName      string `json:"fileName"`
	Base64Content string `json:"base64Content"`
}

type InputFile struct {
	Name    string
	Content []byte
}

type OutputFile struct {
	Name    string `json:"name"`
	Content []byte `json:"content"`
}
