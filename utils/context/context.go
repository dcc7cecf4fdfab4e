package context

import (
	"context"

	"github.com/muhammadheryan/wms/constant"
	"github.com/muhammadheryan/wms/model"
	"github.com/muhammadheryan/wms/utils/errors"
)

func WithPrincipal(ctx context.Context, p *model.Principal) context.Context {
	return context.WithValue(ctx, constant.PrincipalKey, p)
}

func GetPrincipal(ctx context.Context) (*model.Principal, bool) {
	v := ctx.Value(constant.PrincipalKey)
	if v == nil {
		return nil, false
	}
	p, ok := v.(*model.Principal)
	return p, ok && p != nil
}

func GetUserID(ctx context.Context) (uint64, bool) {
	p, ok := GetPrincipal(ctx)
	if !ok {
		return 0, false
	}
	return p.UserID, true
}

// Authorize returns the caller, failing with ErrUnauthorize when there is none and
// ErrForbidden when any of the warehouses is outside its scope.
func Authorize(ctx context.Context, warehouseIDs ...uint64) (*model.Principal, error) {
	p, ok := GetPrincipal(ctx)
	if !ok {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	for _, id := range warehouseIDs {
		if !p.CanAccess(id) {
			return nil, errors.SetCustomError(constant.ErrForbidden)
		}
	}
	return p, nil
}
