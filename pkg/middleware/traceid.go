package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const traceHeader = "X-Trace-Id"

// TraceIDMiddleware tags the request with an id that the response
// wrapper and the error logs both carry, so a failed admin action can
// be matched to its log lines. An id already present on the request is
// kept, letting callers correlate across retries.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(traceHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}
		c.Set("trace_id", traceID)
		c.Header(traceHeader, traceID)
		c.Next()
	}
}
