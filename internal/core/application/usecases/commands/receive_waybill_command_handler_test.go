package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/reception"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewReceiveWaybillCommand(t *testing.T) {
	t.Run("returned requires a reason", func(t *testing.T) {
		_, err := commands.NewReceiveWaybillCommand("GU-1", "RETURNED", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, services.FailureInvalidInput, services.Classify(err))
	})

	t.Run("delivered drops the reason", func(t *testing.T) {
		cmd, err := commands.NewReceiveWaybillCommand("GU-1", "entrega", "signed by guard")

		require.NoError(t, err)
		assert.Equal(t, reception.Delivered, cmd.Kind())
		assert.Empty(t, cmd.Reason())
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := commands.NewReceiveWaybillCommand("GU-1", "LOST", "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestReceiveWaybillCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReceiveWaybillCommand("GU-1", "RETURNED", "damaged")
	require.NoError(t, err)

	s := newLifecycleStore()
	s.withWaybill("GU-1", newTestWaybill("GU-1"))
	s.withDispatch("GU-1", newTestDispatch("GU-1", newTestCourier("Ana", "Norte")))
	s.withReception("GU-1", nil)
	s.receptions.On("Add", ctx, trackingNumberIs("GU-1")).Return(nil).Once()
	s.uow.On("Commit", ctx).Return(nil).Once()

	handler := s.receiveHandler()
	r, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, reception.Returned, r.Kind())
	assert.Equal(t, "damaged", r.Reason())
	assert.Equal(t, fixedNow, r.ReceivedAt())
	s.receptions.AssertExpectations(t)
	s.cache.AssertCalled(t, "Invalidate", ctx, mock.Anything)
}

func TestReceiveWaybillCommandHandler_Handle_Failures(t *testing.T) {
	ana := newTestCourier("Ana", "Norte")

	testCases := []struct {
		name     string
		arrange  func(s *lifecycleStore)
		wantKind services.FailureKind
	}{
		{
			name: "unregistered waybill",
			arrange: func(s *lifecycleStore) {
				s.withWaybill("GU-1", nil)
				s.withDispatch("GU-1", nil)
				s.withReception("GU-1", nil)
			},
			wantKind: services.FailureNotFound,
		},
		{
			name: "not dispatched yet",
			arrange: func(s *lifecycleStore) {
				s.withWaybill("GU-1", newTestWaybill("GU-1"))
				s.withDispatch("GU-1", nil)
				s.withReception("GU-1", nil)
			},
			wantKind: services.FailureNotDispatchedYet,
		},
		{
			name: "already received",
			arrange: func(s *lifecycleStore) {
				s.withWaybill("GU-1", newTestWaybill("GU-1"))
				s.withDispatch("GU-1", newTestDispatch("GU-1", ana))
				s.withReception("GU-1", newTestReception("GU-1", reception.Returned))
			},
			wantKind: services.FailureAlreadyReceived,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := commands.NewReceiveWaybillCommand("GU-1", "DELIVERED", "")
			require.NoError(t, err)

			s := newLifecycleStore()
			tc.arrange(s)

			handler := s.receiveHandler()
			_, err = handler.Handle(t.Context(), cmd)

			require.Error(t, err)
			assert.Equal(t, tc.wantKind, services.Classify(err))
			s.receptions.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
			s.uow.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}

func TestReceiveWaybillsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	ana := newTestCourier("Ana", "Norte")

	s := newLifecycleStore()
	for _, tn := range []string{"A", "B"} {
		s.withWaybill(tn, newTestWaybill(tn))
		s.withDispatch(tn, newTestDispatch(tn, ana))
	}
	s.withReception("A", nil)
	s.withReception("B", newTestReception("B", reception.Delivered))
	s.receptions.On("Add", mock.Anything, trackingNumberIs("A")).Return(nil).Once()
	s.uow.On("Commit", mock.Anything).Return(nil).Once()

	cmd, err := commands.NewReceiveWaybillsCommand([]commands.ReceptionItem{
		{TrackingNumber: "A", Kind: "DELIVERED"},
		{TrackingNumber: "B", Kind: "RETURNED", Reason: "refused"},
		{TrackingNumber: "C", Kind: "RETURNED"},
	})
	require.NoError(t, err)

	handler := commands.NewReceiveWaybillsCommandHandler(s.receiveHandler())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, result.Succeeded)
	require.Len(t, result.Failed, 2)
	assert.Equal(t, services.FailureAlreadyReceived, result.Failed[0].Kind)
	assert.Equal(t, "C", result.Failed[1].TrackingNumber)
	assert.Equal(t, services.FailureInvalidInput, result.Failed[1].Kind)
	s.receptions.AssertExpectations(t)
}
