package server

import (
	"github.com/dustin/go-humanize"

	"pdfapi/pkg/model"
)

type humanizedAssembleStats struct {
	model.AssembleStats
	RenderingHuman  string `json:"rendering_human"`
	OutputSizeHuman string `json:"output_size_human"`
}

type humanizedDisassembleStats struct {
	model.DisassembleStats
	ReadingHuman    string `json:"reading_human"`
	ExtractionHuman string `json:"extraction_human"`
}

func toHumanizedAssembleStats(assembleStats model.AssembleStats) humanizedAssembleStats {
	return humanizedAssembleStats{
		AssembleStats:   assembleStats,
		RenderingHuman:  assembleStats.Rendering.String(),
		OutputSizeHuman: humanize.Bytes(uint64(assembleStats.OutputSize)),
	}
}

func toHumanizedDisassembleStats(disassembleStats model.DisassembleStats) humanizedDisassembleStats {
	return humanizedDisassembleStats{
		DisassembleStats: disassembleStats,
		ReadingHuman:     disassembleStats.Reading.String(),
		ExtractionHuman:  disassembleStats.Extraction.String(),
	}
}
