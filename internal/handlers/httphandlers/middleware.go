package httphandlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/solace-fi/solace-client-sub001/internal/interfaces"
)

const RequestIDHeader = "X-Request-Id"

// RequestID keeps the caller provided request id or generates a new one
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Set(RequestIDHeader, id)
		ctx.Header(RequestIDHeader, id)
		ctx.Next()
	}
}

func RequestLogger(log interfaces.ILogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		startedAt := time.Now()
		ctx.Next()

		log.Debugw("request",
			"id", ctx.GetString(RequestIDHeader),
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"status", ctx.Writer.Status(),
			"duration", time.Since(startedAt).String(),
		)
		for _, err := range ctx.Errors {
			log.Warnf("request %s failed: %s", ctx.GetString(RequestIDHeader), err)
		}
	}
}
