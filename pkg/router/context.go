package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type requestKey struct{}

// requestContext combines the cancellation of the incoming request with the
// values of the server context.
type requestContext struct {
	context.Context
	values context.Context
}

func newRequestContext(gctx *gin.Context, values context.Context) context.Context {
	ctx := requestContext{Context: gctx.Request.Context(), values: values}
	return context.WithValue(ctx, requestKey{}, gctx.Request)
}

func (ctx requestContext) Value(key any) any {
	if v := ctx.Context.Value(key); v != nil {
		return v
	}

	return ctx.values.Value(key)
}

// HTTPRequest returns the underlying request of a handler or middleware
// context.
func HTTPRequest(ctx context.Context) *http.Request {
	return ctx.Value(requestKey{}).(*http.Request)
}
