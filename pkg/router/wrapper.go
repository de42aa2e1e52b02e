package router

import (
	"net/http"

	"github.com/Replant-Application/Replant-BE-sub001/pkg/errorx"
	"github.com/gin-gonic/gin"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		var req Request
		var err error
		switch method {
		case http.MethodGet:
			err = gctx.ShouldBindQuery(&req)
		default:
			err = gctx.ShouldBindJSON(&req)
		}
		if err != nil {
			writeResponse(gctx, newErrorResponse(errorx.New(errorx.BadRequest, "Cannot bind the request")))
			return
		}

		ctx := newRequestContext(gctx, router.base)
		for _, middleware := range router.middlewares {
			ctx, err = middleware(ctx)
			if err != nil {
				writeResponse(gctx, newErrorResponse(err))
				return
			}
		}

		resp, err := handler(ctx, &req)
		if err != nil {
			writeResponse(gctx, newErrorResponse(err))
			return
		}

		writeResponse(gctx, newResponse(resp))
	}
}
