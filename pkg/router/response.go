package router

import (
	"errors"
	"net/http"

	"github.com/Replant-Application/Replant-BE-sub001/pkg/errorx"
	"github.com/gin-gonic/gin"
)

// response is the envelope of every reply. A zero code means success; any
// other value is an errorx code.
type response struct {
	Code  int64  `json:"code"`
	Error string `json:"error,omitempty"`
	Data  any    `json:"data,omitempty"`
}

func newResponse(data any) response {
	return response{Code: 0, Data: data}
}

func newErrorResponse(err error) response {
	errx := errorx.Error{}
	if errors.As(err, &errx) {
		return response{
			Code:  int64(errx.Code),
			Error: errx.Message,
		}
	}

	return response{
		Code:  int64(errorx.Unknown.Code),
		Error: errorx.Unknown.Message,
	}
}

func writeResponse(gctx *gin.Context, resp response) {
	gctx.JSON(http.StatusOK, resp)
}
