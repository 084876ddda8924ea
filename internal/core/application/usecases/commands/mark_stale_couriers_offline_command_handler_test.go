package commands_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCourierLivenessStore struct {
	mock.Mock
}

func (m *MockCourierLivenessStore) MarkOfflineLastSeenBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func TestNewMarkStaleCouriersOfflineCommand_RejectsNonPositiveDuration(t *testing.T) {
	// Act
	_, err := commands.NewMarkStaleCouriersOfflineCommand(0)

	// Assert
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestMarkStaleCouriersOfflineCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewMarkStaleCouriersOfflineCommand(10 * time.Minute)
	require.NoError(t, err)

	mockStore := new(MockCourierLivenessStore)
	mockStore.On("MarkOfflineLastSeenBefore", ctx, mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			cutoff := args.Get(1).(time.Time)
			// Cutoff sits roughly one threshold in the past.
			assert.WithinDuration(t, time.Now().UTC().Add(-10*time.Minute), cutoff, 5*time.Second)
		}).
		Return(int64(3), nil).
		Once()

	handler := commands.NewMarkStaleCouriersOfflineCommandHandler(mockStore)

	// Act
	marked, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(3), marked)
	mockStore.AssertExpectations(t)
}

func TestMarkStaleCouriersOfflineCommandHandler_Handle_NotConstructedCommand(t *testing.T) {
	// Arrange
	handler := commands.NewMarkStaleCouriersOfflineCommandHandler(new(MockCourierLivenessStore))

	// Act
	_, err := handler.Handle(t.Context(), commands.MarkStaleCouriersOfflineCommand{})

	// Assert
	assert.ErrorIs(t, err, commands.ErrMarkStaleCouriersOfflineCommandIsNotConstructed)
}
