package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/laarne/laundromat/internal/apperr"
)

func statusFor(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindInvalidInput:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// abortError maps an error to its HTTP status. Internal causes are
// logged but never echoed to the client.
func (s *Server) abortError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.log.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "err", err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": apperr.MessageOf(err)})
}

// pathID parses the :id segment; ok=false means the response is
// already written.
func (s *Server) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		s.abortError(c, apperr.InvalidInput("invalid id"))
		return 0, false
	}
	return id, true
}
