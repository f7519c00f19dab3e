package model

import (
	"time"
)

type AssembleStats struct {
	Rendering     time.Duration `json:"rendering"`
	PagesWritten  int           `json:"pages_written"`
	InputsSkipped int           `json:"inputs_skipped"`
	OutputSize    int           `json:"output_size"`
}

type DisassembleStats struct {
	Reading    time.Duration `json:"reading"`
	Extraction time.Duration `json:"extraction"`
	PageCount  int           `json:"page_count"`
	TextPages  int           `json:"text_pages"`
	ImagePages int           `json:"image_pages"`
	EmptyPages int           `json:"empty_pages"`
}
