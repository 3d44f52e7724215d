package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{input: "40", expected: "40.00"},
		{input: " 12.5 ", expected: "12.50"},
		{input: "$7.25", expected: "7.25"},
		{input: "$ 3", expected: "3.00"},
		{input: "-4", expected: "-4.00"},
		{input: "", wantErr: true},
		{input: "$", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "12abc", wantErr: true},
		{input: "NaN", wantErr: true},
		{input: "Inf", wantErr: true},
		{input: "1e3", expected: "1000.00"},
		{input: "0.00000001", expected: "0.00"},
		{input: "0.000000001", wantErr: true},
		{input: "1e-2000000000", wantErr: true},
		{input: "1e16", wantErr: true},
		{input: "1e2000000000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.StringFixed(2))
		})
	}
}
