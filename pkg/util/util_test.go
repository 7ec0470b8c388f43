package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinMax(t *testing.T) {
	require.Equal(t, 2.5, Min(2.5, 3.2))
	require.Equal(t, 2.5, Min(3.2, 2.5))
	require.Equal(t, 3.2, Max(2.5, 3.2))
	require.Equal(t, 3.2, Max(3.2, 2.5))

	require.Equal(t, 1, Min(1, 1))
	require.Equal(t, "A", Min("A", "B"))
	require.Equal(t, "B", Max("A", "B"))
}

func TestStringToFloat64(t *testing.T) {
	val, err := StringToFloat64("-6.175392")
	require.NoError(t, err)
	require.Equal(t, -6.175392, val)

	_, err = StringToFloat64("abc")
	require.Error(t, err)

	_, err = StringToFloat64("")
	require.Error(t, err)
}

func TestFormatKM(t *testing.T) {
	testCases := []struct {
		distance float64
		want     string
	}{
		{6.0, "6.00"},
		{5.9, "5.90"},
		{2.804, "2.80"},
		{2.805, "2.81"},
		{0, "0.00"},
	}

	for _, tt := range testCases {
		require.Equal(t, tt.want, FormatKM(tt.distance))
	}
}

func TestReverseG(t *testing.T) {
	original := []string{"A", "B", "E"}
	reversed := ReverseG(original)

	require.Equal(t, []string{"E", "B", "A"}, reversed)
	// the input slice is untouched
	require.Equal(t, []string{"A", "B", "E"}, original)

	require.Empty(t, ReverseG([]int{}))
}
