package earnings_test

import (
	"testing"

	"github.com/fwojciec/earnings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionalInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  *int
	}{
		{name: "blank", input: "", want: nil},
		{name: "whitespace", input: "   ", want: nil},
		{name: "non-numeric", input: "abc", want: nil},
		{name: "number", input: "2024", want: intPtr(2024)},
		{name: "padded number", input: " 3 ", want: intPtr(3)},
		{name: "whole float", input: "2024.0", want: intPtr(2024)},
		{name: "exponent", input: "2e3", want: intPtr(2000)},
		{name: "fractional", input: "2.5", want: nil},
		{name: "not a number", input: "NaN", want: nil},
		{name: "infinite", input: "Inf", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := earnings.ParseOptionalInt(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func intPtr(n int) *int {
	return &n
}
