package main_test

import (
	"bytes"
	"context"
	"testing"

	main "github.com/fwojciec/earnings/cmd/earnings"
	"github.com/fwojciec/earnings/glamour"
	"github.com/fwojciec/earnings/htmltomarkdown"
	"github.com/stretchr/testify/require"
)

// testDeps returns dependencies writing to fresh buffers.
func testDeps(t *testing.T) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	renderer, err := glamour.NewRenderer("notty", 80)
	require.NoError(t, err)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:       context.Background(),
		Stdout:    stdout,
		Stderr:    stderr,
		Converter: htmltomarkdown.NewConverter(),
		Renderer:  renderer,
	}, stdout, stderr
}

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }
