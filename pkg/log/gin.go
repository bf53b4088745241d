package log

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const headerRequestID = "X-Request-ID"

// SetActor records the acting user on the gin context so the request log
// line can report who issued a mutation.
func SetActor(c *gin.Context, actorID string) {
	if actorID != "" {
		c.Set(FieldActorID, actorID)
	}
}

// GinMiddleware scopes a request logger into the request context, echoes
// X-Request-ID (minting one when absent) and writes one line per request.
// 4xx lines are warnings and 5xx lines are errors.
func GinMiddleware(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader(headerRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Header(headerRequestID, reqID)

		reqLog := logger.With().
			Str(FieldRequestID, reqID).
			Str(FieldMethod, c.Request.Method).
			Str(FieldPath, c.FullPath()).
			Str(FieldClientIP, c.ClientIP()).
			Logger()
		c.Request = c.Request.WithContext(WithLogger(c.Request.Context(), reqLog))

		c.Next()

		status := c.Writer.Status()
		evt := reqLog.WithLevel(statusLevel(status)).
			Int(FieldStatus, status).
			Int64(FieldLatency, time.Since(start).Milliseconds())
		if actorID := c.GetString(FieldActorID); actorID != "" {
			evt = evt.Str(FieldActorID, actorID)
		}
		if len(c.Errors) > 0 {
			evt = evt.Str("errors", c.Errors.String())
		}
		evt.Msg("request completed")
	}
}

func statusLevel(status int) zerolog.Level {
	switch {
	case status >= 500:
		return zerolog.ErrorLevel
	case status >= 400:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
