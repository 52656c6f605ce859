package slices

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIndexList(t *testing.T) {
	tests := []struct {
		input string
		want  []int
	}{
		{"3", []int{3}},
		{"4, 1,4", []int{1, 4}},
		{"1,4-6,9", []int{1, 4, 5, 6, 9}},
		{" 7 - 8 ", []int{7, 8}},
		{"0-9", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
	}

	for _, tt := range tests {
		got, err := ParseIndexList(tt.input, 10)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestParseIndexListEmpty(t *testing.T) {
	got, err := ParseIndexList(" , ", 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseIndexListInvalid(t *testing.T) {
	for _, input := range []string{"a", "3-", "5-2", "1,x", "-1"} {
		_, err := ParseIndexList(input, 10)
		assert.Error(t, err, input)
	}
}

func TestParseIndexListOutOfRange(t *testing.T) {
	for _, input := range []string{"10", "0-999999999", "2,12"} {
		got, err := ParseIndexList(input, 10)
		assert.ErrorContains(t, err, "out of range", input)
		assert.Nil(t, got)
	}

	_, err := ParseIndexList("0", 0)
	assert.Error(t, err)
}
