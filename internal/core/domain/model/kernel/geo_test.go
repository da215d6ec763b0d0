package kernel_test

import (
	"testing"

	"livraison/internal/core/domain/model/kernel"
	"livraison/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("valid coordinates", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(48.8566, 2.3522)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.InDelta(t, 48.8566, p.Lat(), 1e-9)
		assert.InDelta(t, 2.3522, p.Lon(), 1e-9)
	})

	t.Run("boundary coordinates", func(t *testing.T) {
		for _, c := range [][2]float64{{-90, -180}, {90, 180}, {0, 0}} {
			p, err := kernel.NewGeoPoint(c[0], c[1])
			require.NoError(t, err)
			require.NoError(t, p.Validate())
		}
	})

	t.Run("latitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(91, 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("longitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, -180.5)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var p kernel.GeoPoint
		require.Error(t, p.Validate())
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	a, err := kernel.NewGeoPoint(45.75, 4.85)
	require.NoError(t, err)
	b, err := kernel.NewGeoPoint(45.75, 4.85)
	require.NoError(t, err)
	c, err := kernel.NewGeoPoint(45.75, 4.86)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
