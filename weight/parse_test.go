package weight_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lukasgeis/negative-edge-weights/weight"
)

func TestParseEachInstantiation(t *testing.T) {
	i32, err := weight.Parse[int32]("-7")
	require.NoError(t, err)
	require.Equal(t, int32(-7), i32)

	i64, err := weight.Parse[int64]("9000000000")
	require.NoError(t, err)
	require.Equal(t, int64(9000000000), i64)

	f32, err := weight.Parse[float32]("1.5")
	require.NoError(t, err)
	require.Equal(t, float32(1.5), f32)

	f64, err := weight.Parse[float64]("-2.25")
	require.NoError(t, err)
	require.Equal(t, -2.25, f64)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := weight.Parse[int64]("not-a-number")
	require.Error(t, err)
}
