package serrors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"avconsole/pkg/serrors"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrBadRequest,
		serrors.ErrNotFound,
		serrors.ErrConflict,
		serrors.ErrUnavailable,
		serrors.ErrUnauthorized,
		serrors.ErrForbidden,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("connection refused")

	e1 := serrors.With(serrors.ErrNotFound, "scan %s not found", "b2c1")
	require.Equal(t, "scan b2c1 not found", e1.Error())

	e2 := serrors.Wrap(serrors.ErrUnavailable, base, "loading scan")
	require.Equal(t, "loading scan: connection refused", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrConflict)
	require.Equal(t, "CONFLICT", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrConflict, base, "completing scan")

	require.ErrorIs(t, e, serrors.ErrConflict)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrNotFound)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading threat")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
}
