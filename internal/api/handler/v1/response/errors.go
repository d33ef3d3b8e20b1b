package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	statusCode int

	Msg string `json:"msg"`
}

func (e *Err) Error() string {
	return e.Msg
}

func RenderErr(ctx *gin.Context, err *Err) {
	ctx.JSON(err.statusCode, err)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		statusCode: http.StatusBadRequest,
		Msg:        err.Error(),
	}
}

func ErrUnauthorized(err error) *Err {
	return &Err{
		statusCode: http.StatusUnauthorized,
		Msg:        err.Error(),
	}
}

func ErrWrongCredentials() *Err {
	return &Err{
		statusCode: http.StatusBadRequest,
		Msg:        "invalid username or password",
	}
}

func ErrNotFound(resource, key string, value interface{}) *Err {
	return &Err{
		statusCode: http.StatusNotFound,
		Msg:        fmt.Sprintf("%v with %v (%v) not found", resource, key, value),
	}
}

func ErrServiceUnavailable(msg string) *Err {
	return &Err{
		statusCode: http.StatusServiceUnavailable,
		Msg:        msg,
	}
}

// ErrInternalServerError logs the wrapped cause server-side and returns a
// generic message so internals never reach the client.
func ErrInternalServerError(err error) *Err {
	zap.L().Error("server error", zap.Error(err))

	return &Err{
		statusCode: http.StatusInternalServerError,
		Msg:        "internal server error",
	}
}
