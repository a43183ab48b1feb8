package courier_test

import (
	"testing"

	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourier(t *testing.T) {
	t.Run("should create courier in zone", func(t *testing.T) {
		c, err := courier.NewCourier(kernel.MustName("Ana"), kernel.MustName("Norte"))

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "Ana", c.Name().String())
		assert.Equal(t, "Norte", c.Zone().String())
	})

	t.Run("should aggregate validation errors", func(t *testing.T) {
		_, err := courier.NewCourier(kernel.Name{}, kernel.Name{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "courier")
		assert.Contains(t, err.Error(), "zone")
	})
}

func TestCourier_Reassign(t *testing.T) {
	c, err := courier.NewCourier(kernel.MustName("Ana"), kernel.MustName("Norte"))
	require.NoError(t, err)

	t.Run("should move courier to new zone", func(t *testing.T) {
		require.NoError(t, c.Reassign(kernel.MustName("Sur")))

		assert.Equal(t, "Sur", c.Zone().String())
	})

	t.Run("should keep current zone on invalid input", func(t *testing.T) {
		err := c.Reassign(kernel.Name{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, "Sur", c.Zone().String())
	})
}

func TestCourier_IsEqual(t *testing.T) {
	a, _ := courier.NewCourier(kernel.MustName("Ana"), kernel.MustName("Norte"))
	sameName, _ := courier.NewCourier(kernel.MustName("Ana"), kernel.MustName("Sur"))
	other, _ := courier.NewCourier(kernel.MustName("Luis"), kernel.MustName("Norte"))

	assert.True(t, a.IsEqual(sameName))
	assert.False(t, a.IsEqual(other))
	assert.False(t, a.IsEqual(nil))
}

func TestCourier_Validate(t *testing.T) {
	var nilCourier *courier.Courier
	assert.Equal(t, courier.ErrCourierIsNotConstructed, nilCourier.Validate())
	assert.Equal(t, courier.ErrCourierIsNotConstructed, (&courier.Courier{}).Validate())
}
