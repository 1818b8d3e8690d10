package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuantity_PlainNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"2", 2},
		{"250", 250},
		{"0.5", 0.5},
		{"2.25", 2.25},
		{" 3 ", 3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseQuantity(tt.input)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParseQuantity_Fractions(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"1/2", 0.5},
		{"3/4", 0.75},
		{"2 1/2", 2.5},
		{"1 1/4", 1.25},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseQuantity(tt.input)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParseQuantity_UnicodeFractions(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"½", 0.5},
		{"¾", 0.75},
		{"⅓", 0.333},
		{"2½", 2.5},
		{"1¼", 1.25},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseQuantity(tt.input)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParseQuantity_Invalid(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"abc",
		"1/0",
		"1/2/3",
		"-2",
		"a/b",
	}

	for _, input := range tests {
		t.Run("invalid "+input, func(t *testing.T) {
			assert.Nil(t, ParseQuantity(input))
		})
	}
}
