package response

import (
	"net/http"

	xerrors "crm-service/internal/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Response defines the standard API response format.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success sends a successful response with a message and optional data.
func Success(c *gin.Context, status int, message string, data interface{}) {
	if status == 0 {
		status = http.StatusOK
	}

	c.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error sends a standardized error response.
func Error(c *gin.Context, code int, message string, err error) {
	c.Abort()

	resp := Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}

	c.JSON(code, resp)
}

// FromError maps an application error to the matching HTTP status.
func FromError(c *gin.Context, message string, err error) {
	switch {
	case xerrors.Is(err, xerrors.ErrNotFound):
		Error(c, http.StatusNotFound, message, err)
	case xerrors.Is(err, xerrors.ErrReference), xerrors.Is(err, xerrors.ErrValidation):
		Error(c, http.StatusBadRequest, message, err)
	case xerrors.Is(err, xerrors.ErrUnauthorized):
		Error(c, http.StatusUnauthorized, message, err)
	case xerrors.Is(err, xerrors.ErrStoreUnavailable):
		Error(c, http.StatusServiceUnavailable, message, err)
	default:
		Error(c, http.StatusInternalServerError, message, err)
	}
}

// NotFound sends a 404 Not Found response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message, nil)
}

// Unauthorized sends a 401 Unauthorized response.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message, nil)
}
