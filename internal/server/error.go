package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pdfapi/api"
	"pdfapi/internal/logging"
	"pdfapi/pkg/pdf"
)

const (
	msgMakePDFFailed        = "Internal server error"
	msgDisassemblePDFFailed = "Error while disassembling PDF"
)

var (
	errRequestBodyDecode  = api.Error{Message: "Error reading request body"}
	errRequestTooLarge    = api.Error{Message: "Request body is too large"}
	errInvalidFileBatch   = api.Error{Message: "Invalid file batch supplied in request body"}
	errSingleFileExpected = api.Error{Message: "Exactly one file is expected in the file batch"}
)

func handleBodyError(ctx *gin.Context, logger *logging.Logger, err error) {
	logger.WithError(err).Error("Error decoding request body")

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		ctx.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, errRequestTooLarge)
		return
	}
	ctx.AbortWithStatusJSON(http.StatusBadRequest, api.Error{Message: errRequestBodyDecode.Message, Detail: err.Error()})
}

// handlePDFError maps the error kinds of the pdf package to responses.
// Validation errors become 400, everything else 500 with the detail of the
// underlying error.
func handlePDFError(ctx *gin.Context, logger *logging.Logger, err error, internalMessage string) {
	var validationErr *pdf.ValidationError
	if errors.As(err, &validationErr) {
		logger.WithError(err).Warn("Request rejected")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, api.Error{Message: validationErr.Error()})
		return
	}

	logger.WithError(err).Error("Error processing PDF request")
	detail := err.Error()
	var internalErr *pdf.InternalError
	if errors.As(err, &internalErr) {
		detail = internalErr.Err.Error()
	}
	ctx.AbortWithStatusJSON(http.StatusInternalServerError, api.Error{Message: internalMessage, Detail: detail})
}
