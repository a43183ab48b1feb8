package waybill_test

import (
	"strings"
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/waybill"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWaybill(t *testing.T) {
	tn := kernel.MustTrackingNumber("GU-000123")

	t.Run("should create waybill with normalized fields", func(t *testing.T) {
		w, err := waybill.NewWaybill(tn, "  Tienda   Central ", "María Pérez", "Calle 10 # 4-20", "Bogotá")

		require.NoError(t, err)
		require.NoError(t, w.Validate())
		assert.True(t, w.TrackingNumber().IsEqual(tn))
		assert.Equal(t, "Tienda Central", w.Sender())
		assert.Equal(t, "María Pérez", w.Recipient())
		assert.Equal(t, "Calle 10 # 4-20", w.Address())
		assert.Equal(t, "Bogotá", w.City())
	})

	t.Run("should report every missing field", func(t *testing.T) {
		w, err := waybill.NewWaybill(tn, "", " ", "", "\t")

		require.Error(t, err)
		assert.Nil(t, w)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		for _, field := range []string{"sender", "recipient", "address", "city"} {
			assert.Contains(t, err.Error(), field)
		}
	})

	t.Run("should reject zero tracking number", func(t *testing.T) {
		_, err := waybill.NewWaybill(kernel.TrackingNumber{}, "a", "b", "c", "d")

		require.ErrorIs(t, err, kernel.ErrTrackingNumberIsNotConstructed)
	})

	t.Run("should reject overlong fields", func(t *testing.T) {
		_, err := waybill.NewWaybill(tn, strings.Repeat("x", 256), "b", "c", "d")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "sender length")
	})
}

func TestWaybill_Validate(t *testing.T) {
	var nilWaybill *waybill.Waybill
	assert.Equal(t, waybill.ErrWaybillIsNotConstructed, nilWaybill.Validate())
	assert.Equal(t, waybill.ErrWaybillIsNotConstructed, (&waybill.Waybill{}).Validate())
}
