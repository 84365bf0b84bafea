package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "expense-assistant/pkg/errors"
)

// OK sends 200 JSON with data as the whole body, without HTML escaping.
func OK(c *gin.Context, data any) {
	c.PureJSON(http.StatusOK, data)
}

// Error sends err with the status it carries. Plain errors are rendered as 500.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode(), Resp{Message: messageOrDefault(httpErr.Message)})
		return
	}

	msg := ""
	if err != nil {
		msg = err.Error()
	}
	c.JSON(http.StatusInternalServerError, Resp{Message: messageOrDefault(msg)})
}

// InternalError sends 500 with the default message.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Resp{Message: DefaultErrorMessage})
}

func messageOrDefault(msg string) string {
	if msg == "" {
		return DefaultErrorMessage
	}
	return msg
}
