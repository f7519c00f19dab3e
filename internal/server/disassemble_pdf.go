package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pdfapi/internal/logging"
	"pdfapi/pkg/model"
	"pdfapi/pkg/pdf"
)

// DisassemblePDFHandler godoc
//
// @Summary Split a PDF into per-page artifacts
// @Description Pages with text produce <name>_page_<n>.txt. Pages without text produce one artifact per painted image, <name>_page_<n>.<ext> for the first and <name>_page_<n>_<k>.<ext> for the following ones. Pages with neither are skipped; a document without any text or image is rejected with 400. JSON requests carry base64 content; octet-stream requests carry a FlatBuffers FileBatch with exactly one file and get a FileBatch back. Errors are always returned as JSON
// @Tags pdf
// @Accept json,octet-stream
// @Produce json,octet-stream
// @Param requestBody body model.FileResult true "PDF to split"
// @Success 200 {array} model.FileResult
// @Failure 400 {object} api.Error
// @Failure 413 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /DisassemblePDF [post]
func (h *pdfHandlers) DisassemblePDFHandler(ctx *gin.Context) {
	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing disassemble PDF request")

	if isOctetStream(ctx) {
		h.disassembleFileBatch(ctx, logger)
		return
	}

	var requestBody model.FileResult
	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		handleBodyError(ctx, logger, err)
		return
	}

	disassembler := pdf.NewDisassembler(h.toolkit)
	results, err := pdf.DisassemblePDF(disassembler, requestBody)
	if err != nil {
		handlePDFError(ctx, logger, err, msgDisassemblePDFFailed)
		return
	}

	logger.With("stats", toHumanizedDisassembleStats(disassembler.Stats())).Info("PDF disassembly was successful")
	ctx.JSON(http.StatusOK, results)
}

func (h *pdfHandlers) disassembleFileBatch(ctx *gin.Context, logger *logging.Logger) {
	files, ok := bindFileBatch(ctx, logger)
	if !ok {
		return
	}
	if len(files) != 1 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errSingleFileExpected)
		return
	}

	disassembler := pdf.NewDisassembler(h.toolkit)
	outputs, err := disassembler.Disassemble(files[0].Name, files[0].Content)
	if err != nil {
		handlePDFError(ctx, logger, err, msgDisassemblePDFFailed)
		return
	}

	logger.With("stats", toHumanizedDisassembleStats(disassembler.Stats())).Info("PDF disassembly was successful")
	ctx.Data(http.StatusOK, mimeOctetStream, encodeFileBatch(outputs))
}
