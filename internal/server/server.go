package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "pdfapi/docs"
	"pdfapi/internal/logging"
	"pdfapi/pkg/config"
	"pdfapi/pkg/pdf"
)

const (
	RFC3339Millis = "2006-01-02T15:04:05.000Z07:00"
)

type pdfHandlers struct {
	toolkit pdf.Toolkit
}

// StartServer godoc
// @title PDF API
// @version 1.0
// @description An API to merge files into a PDF and to split a PDF into per-page text and images
// @BasePath /api/pdf
func StartServer(c config.ServerConfig) error {
	c.PopulateUnsetConfigVars()
	logging.BuildLogger().Info("Starting server", "port", c.Port, "max_request_size", humanize.IBytes(uint64(c.MaxRequestBytes)))

	return NewRouter(c, pdf.NewLibrary(c.Document)).Run(fmt.Sprintf(":%s", c.Port))
}

func NewRouter(c config.ServerConfig, toolkit pdf.Toolkit) *gin.Engine {
	c.PopulateUnsetConfigVars()
	handlers := &pdfHandlers{toolkit: toolkit}

	r := gin.New()
	r.Use(requestID, gin.LoggerWithConfig(gin.LoggerConfig{Formatter: logFormatter}), gin.Recovery())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/healthz", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "ok")
	})

	pdfGroup := r.Group("/api/pdf", limitRequestBody(c.MaxRequestBytes))
	pdfGroup.POST("/MakePDF", handlers.MakePDFHandler)
	pdfGroup.POST("/DisassemblePDF", handlers.DisassemblePDFHandler)

	return r
}

func logFormatter(param gin.LogFormatterParams) string {
	if param.Latency > time.Minute {
		param.Latency = param.Latency.Truncate(time.Second)
	}

	return fmt.Sprintf("{\"timestamp\":\"%v\", \"status_code\": \"%d\", \"latency\": \"%v\", \"latency_raw\": \"%d\", \"response_size\": \"%s\", \"response_size_raw\": \"%d\", \"client_ip\":\"%s\", \"method\": \"%s\", \"path\": \"%v\", \"request_id\": \"%s\", \"error\": \"%s\"}\n",
		param.TimeStamp.Format(RFC3339Millis),
		param.StatusCode,
		param.Latency,
		param.Latency,
		humanize.Bytes(uint64(max(param.BodySize, 0))),
		param.BodySize,
		param.ClientIP,
		param.Method,
		param.Path,
		requestIDFromKeys(param.Keys),
		param.ErrorMessage,
	)
}

func requestIDFromKeys(keys map[string]any) string {
	id, _ := keys[logging.RequestIDKey].(string)
	return id
}
