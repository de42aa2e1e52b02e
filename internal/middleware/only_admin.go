package middleware

import (
	"context"

	"github.com/Replant-Application/Replant-BE-sub001/pkg/errorx"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/router"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/xcontext"
	"golang.org/x/exp/slices"
)

func OnlyAdmin() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		userID := xcontext.RequestUserID(ctx)
		if !slices.Contains(xcontext.Configs(ctx).Auth.AdminIDs, userID) {
			return nil, errorx.New(errorx.PermissionDenied, "Only admin can call this API")
		}

		return ctx, nil
	}
}
