package response

import (
	"errors"
	"net/http"

	pkgErrors "sso-anythingllm-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK renders data with status 200.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Error renders err. HTTPErrors and validation collectors keep their status,
// everything else becomes a 500 with a generic message.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	var collector *pkgErrors.ValidationErrorCollector
	switch {
	case errors.As(err, &collector):
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: ValidationErrorCode,
			Message:   "Validation failed",
			Errors:    collector.Errors(),
		})
	case errors.As(err, &httpErr):
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
	default:
		c.JSON(http.StatusInternalServerError, Resp{
			ErrorCode: http.StatusInternalServerError,
			Message:   DefaultErrorMessage,
		})
	}
}

// Unauthorized renders a 401.
func Unauthorized(c *gin.Context) {
	Error(c, pkgErrors.NewUnauthorizedHTTPError())
}

// PanicError renders a recovered panic as a 500.
func PanicError(c *gin.Context, _ any) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   DefaultErrorMessage,
	})
}
