package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestObserver records request latency.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, duration time.Duration)
}

// Instrument reports every request to the observer, labelled by route template.
func Instrument(observer RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		observer.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
