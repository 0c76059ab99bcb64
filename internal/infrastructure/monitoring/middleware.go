package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Call statuses recorded by Timer
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Middleware creates a Gin middleware for metrics collection
func Middleware(metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method

		reqSize := c.Request.ContentLength
		if reqSize < 0 {
			reqSize = 0
		}

		c.Next()

		// route template keeps label cardinality bounded
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		duration := time.Since(start)
		status := strconv.Itoa(c.Writer.Status())
		respSize := int64(c.Writer.Size())
		if respSize < 0 {
			respSize = 0
		}

		metrics.RecordHTTPRequest(method, path, status, duration, reqSize, respSize)
	}
}

// Timer measures a calculation call. A nil metrics makes it a no-op.
type Timer struct {
	start   time.Time
	metrics *Metrics
	service string
	tool    string
}

// NewTimer creates a new timer
func NewTimer(metrics *Metrics, service, tool string) *Timer {
	return &Timer{
		start:   time.Now(),
		metrics: metrics,
		service: service,
		tool:    tool,
	}
}

// Stop records the call with the given status
func (t *Timer) Stop(status string) {
	if t.metrics == nil {
		return
	}
	t.metrics.RecordCalculation(t.service, t.tool, status, time.Since(t.start))
}

// Fail records a failed call and its error kind
func (t *Timer) Fail(kind string) {
	if t.metrics == nil {
		return
	}
	t.metrics.RecordCalculationError(t.service, t.tool, kind)
	t.Stop(StatusFailure)
}
