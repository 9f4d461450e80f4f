package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalUnmarshal(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "number", input: `12.5`, want: 12.5},
		{name: "integer number", input: `10`, want: 10},
		{name: "numeric string", input: `"1299.99"`, want: 1299.99},
		{name: "integer string", input: `"7"`, want: 7},
		{name: "negative parses", input: `-1`, want: -1},
		{name: "word string", input: `"cheap"`, wantErr: true},
		{name: "empty string", input: `""`, wantErr: true},
		{name: "boolean", input: `true`, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var d Decimal
			err := json.Unmarshal([]byte(tc.input), &d)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, float64(d))
		})
	}
}

func TestIntegerUnmarshal(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "number", input: `5`, want: 5},
		{name: "numeric string", input: `"30"`, want: 30},
		{name: "zero", input: `0`, want: 0},
		{name: "negative parses", input: `-2`, want: -2},
		{name: "fractional rejected", input: `1.5`, wantErr: true},
		{name: "fractional string rejected", input: `"1.5"`, wantErr: true},
		{name: "word string", input: `"many"`, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var i Integer
			err := json.Unmarshal([]byte(tc.input), &i)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, int(i))
		})
	}
}

func TestRoundPrice(t *testing.T) {
	assert.Equal(t, 10.0, roundPrice(9.999))
	assert.Equal(t, 1299.99, roundPrice(1299.99))
	assert.Equal(t, 0.0, roundPrice(0))
	assert.Equal(t, 19.99, roundPrice(19.99))
}
