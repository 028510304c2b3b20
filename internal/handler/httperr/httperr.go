package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the failure envelope: ok is always false, error carries a
// human-readable reason, detail carries structured context (for booking
// conflicts, the per-slot reasons the client needs to resubmit a
// corrected request).
type Response struct {
	Status int    `json:"-"`
	Ok     bool   `json:"ok"`
	Error  string `json:"error"`
	Detail any    `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Ok: false, Error: msg, Detail: detail}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
