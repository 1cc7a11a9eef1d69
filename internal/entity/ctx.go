package entity

import (
	"context"
)

type CtxKey int

const (
	CtxKeyStaff CtxKey = iota
)

func CtxWithStaff(ctx context.Context, staff StaffUser) context.Context {
	return context.WithValue(ctx, CtxKeyStaff, staff)
}

// StaffFromCtx returns the authenticated staff user from context or
// ErrUnauthenticated if none is set.
func StaffFromCtx(ctx context.Context) (StaffUser, error) {
	staff, ok := ctx.Value(CtxKeyStaff).(StaffUser)
	if !ok {
		return staff, ErrUnauthenticated
	}

	return staff, nil
}
