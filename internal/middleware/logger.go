package middleware

import (
	"time" // Request duration measurement

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// RequestLogger logs every request with method, path, status and latency
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now() // Record start time
		c.Next()            // Process the request
		// Log the completed request with structured fields
		logrus.WithFields(logrus.Fields{
			"method":  c.Request.Method,          // HTTP method
			"path":    c.Request.URL.Path,        // Request path
			"status":  c.Writer.Status(),         // Response status code
			"latency": time.Since(start).String(), // Request duration
			"client":  c.ClientIP(),              // Client IP address
		}).Info("request completed")
	}
}
