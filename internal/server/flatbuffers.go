package server

import (
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"

	"pdfapi/api/pdfapi/Files"
	"pdfapi/pkg/model"
)

const mimeOctetStream = "application/octet-stream"

func decodeFileBatch(buf []byte) (files []model.InputFile, err error) {
	// malformed offsets make the generated accessors panic
	defer func() {
		if r := recover(); r != nil {
			files, err = nil, fmt.Errorf("malformed file batch: %v", r)
		}
	}()

	if len(buf) < flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("file batch too short")
	}

	batch := Files.GetRootAsFileBatch(buf, 0)
	files = make([]model.InputFile, 0, batch.FilesLength())
	for i := 0; i < batch.FilesLength(); i++ {
		var fbFile Files.File
		if !batch.Files(&fbFile, i) {
			return nil, fmt.Errorf("could not read file %d of batch", i)
		}
		files = append(files, model.InputFile{
			Name:    string(fbFile.Name()),
			Content: fbFile.ContentBytes(),
		})
	}
	return files, nil
}

func encodeFileBatch(files []model.OutputFile) []byte {
	initialSize := 0
	for _, file := range files {
		initialSize += len(file.Name) + len(file.Content)
	}
	builder := flatbuffers.NewBuilder(initialSize + 64)

	fileOffsets := make([]flatbuffers.UOffsetT, len(files))
	for i, file := range files {
		name := builder.CreateString(file.Name)
		content := builder.CreateByteVector(file.Content)

		Files.FileStart(builder)
		Files.FileAddName(builder, name)
		Files.FileAddContent(builder, content)
		fileOffsets[i] = Files.FileEnd(builder)
	}

	Files.FileBatchStartFilesVector(builder, len(fileOffsets))
	for i := len(fileOffsets) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(fileOffsets[i])
	}
	filesVector := builder.EndVector(len(fileOffsets))

	Files.FileBatchStart(builder)
	Files.FileBatchAddFiles(builder, filesVector)
	builder.Finish(Files.FileBatchEnd(builder))

	return builder.FinishedBytes()
}
