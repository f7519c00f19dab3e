package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pdfapi/internal/logging"
)

const requestIDHeader = "X-Request-ID"

func requestID(ctx *gin.Context) {
	id := ctx.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	ctx.Set(logging.RequestIDKey, id)
	ctx.Header(requestIDHeader, id)
	ctx.Next()
}

func limitRequestBody(limit int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, limit)
		ctx.Next()
	}
}
