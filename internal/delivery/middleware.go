package delivery

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"
	resultCountKey  = "resultCount"
)

// RequestID reuses an incoming X-Request-ID or generates one, and echoes it
// on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(requestIDKey, reqID)
		c.Writer.Header().Set(requestIDHeader, reqID)
		c.Next()
	}
}

// RequestLogger writes one entry per request. Product endpoints add the
// number of products they returned.
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		c.Next()

		fields := logrus.Fields{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       c.FullPath(),
			"status_code": c.Writer.Status(),
			"latency_ms":  time.Since(startTime).Milliseconds(),
		}
		if reqID := c.GetString(requestIDKey); reqID != "" {
			fields["request_id"] = reqID
		}
		if count, ok := c.Get(resultCountKey); ok {
			fields["result_count"] = count
		}
		entry := logger.WithFields(fields)

		switch status := c.Writer.Status(); {
		case len(c.Errors) > 0:
			entry.Error(c.Errors.ByType(gin.ErrorTypePrivate).String())
		case status >= 500:
			entry.Error("Request completed with server error")
		case status >= 400:
			entry.Warn("Request completed with client error")
		default:
			entry.Info("Request completed")
		}
	}
}
