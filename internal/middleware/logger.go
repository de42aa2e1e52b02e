package middleware

import (
	"context"

	"github.com/Replant-Application/Replant-BE-sub001/pkg/router"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/xcontext"
)

func Logger() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		r := router.HTTPRequest(ctx)
		xcontext.Logger(ctx).Infof("%s | %s", r.Method, r.URL.Path)
		return ctx, nil
	}
}
