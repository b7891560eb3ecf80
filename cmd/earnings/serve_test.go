package main_test

import (
	"context"
	"testing"
	"time"

	main "github.com/fwojciec/earnings/cmd/earnings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("serves until context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		deps, stdout, _ := testDeps(t)
		deps.Ctx = ctx

		err := (&main.ServeCmd{Addr: "127.0.0.1:0"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Serving on http://127.0.0.1:")
	})

	t.Run("returns error for bad address", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps(t)

		err := (&main.ServeCmd{Addr: "not an address"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "could not listen")
	})
}
