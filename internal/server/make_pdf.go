package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"pdfapi/internal/logging"
	"pdfapi/pkg/config"
	"pdfapi/pkg/model"
	"pdfapi/pkg/pdf"
)

// MakePDFHandler godoc
//
// @Summary Merge files into a single PDF
// @Description Every file with content becomes one page, in request order: images are scaled onto the page, text is laid out as a paragraph and other files get a placeholder page. Files without content are skipped. JSON requests carry base64 content and get a JSON array with the single merged.pdf result; octet-stream requests carry a FlatBuffers FileBatch and get one back. Errors are always returned as JSON
// @Tags pdf
// @Accept json,octet-stream
// @Produce json,octet-stream
// @Param requestBody body []model.FileRequest true "Files to merge, in page order"
// @Success 200 {array} model.FileResult
// @Failure 400 {object} api.Error
// @Failure 413 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /MakePDF [post]
func (h *pdfHandlers) MakePDFHandler(ctx *gin.Context) {
	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing make PDF request")

	if isOctetStream(ctx) {
		h.makePDFFromFileBatch(ctx, logger)
		return
	}

	var requests []model.FileRequest
	// an absent body is treated like an empty list
	if err := ctx.ShouldBindJSON(&requests); err != nil && !errors.Is(err, io.EOF) {
		handleBodyError(ctx, logger, err)
		return
	}

	assembler := pdf.NewAssembler(h.toolkit)
	result, err := pdf.MakePDF(assembler, requests)
	if err != nil {
		handlePDFError(ctx, logger, err, msgMakePDFFailed)
		return
	}

	logger.With("stats", toHumanizedAssembleStats(assembler.Stats())).Info("PDF assembly was successful")
	ctx.JSON(http.StatusOK, []model.FileResult{result})
}

func (h *pdfHandlers) makePDFFromFileBatch(ctx *gin.Context, logger *logging.Logger) {
	files, ok := bindFileBatch(ctx, logger)
	if !ok {
		return
	}

	assembler := pdf.NewAssembler(h.toolkit)
	merged, err := pdf.Merge(assembler, files)
	if err != nil {
		handlePDFError(ctx, logger, err, msgMakePDFFailed)
		return
	}

	logger.With("stats", toHumanizedAssembleStats(assembler.Stats())).Info("PDF assembly was successful")
	ctx.Data(http.StatusOK, mimeOctetStream, encodeFileBatch([]model.OutputFile{{
		Name:    config.DefaultMergedPDFName,
		Content: merged,
	}}))
}

func isOctetStream(ctx *gin.Context) bool {
	return ctx.ContentType() == mimeOctetStream
}

func bindFileBatch(ctx *gin.Context, logger *logging.Logger) ([]model.InputFile, bool) {
	requestBody, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		handleBodyError(ctx, logger, err)
		return nil, false
	}

	files, err := decodeFileBatch(requestBody)
	if err != nil {
		logger.WithError(err).Error("Error decoding file batch")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidFileBatch)
		return nil, false
	}
	return files, true
}
