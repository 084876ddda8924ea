package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/pkg/codes"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockJobClaimer struct {
	mock.Mock
}

func (m *MockJobClaimer) Claim(
	ctx context.Context,
	jobID, courierID int64,
	pickupCode, deliveryCode string,
) (*job.Job, error) {
	args := m.Called(ctx, jobID, courierID, pickupCode, deliveryCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func assignedJob(t *testing.T, jobID, courierID int64, pickupCode, deliveryCode string) *job.Job {
	t.Helper()
	restored, err := job.RestoreJob(
		jobID, uuid.New(), "Crown for patient #12", job.Assigned, &courierID,
		pickupCode, deliveryCode, "15.00", time.Now().UTC(),
	)
	require.NoError(t, err)
	return restored
}

func TestAcceptJobCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewAcceptJobCommand(42, 7)
	require.NoError(t, err)

	mockJobs := new(MockJobClaimer)
	mockJobs.On("Claim", ctx, int64(42), int64(7),
		mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(assignedJob(t, 42, 7, "A1B2C3", "D4E5F6"), nil).
		Once()

	handler := commands.NewAcceptJobCommandHandler(mockJobs)

	// Act
	claimed, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(42), claimed.ID())
	assert.Equal(t, job.Assigned, claimed.Status())
	mockJobs.AssertExpectations(t)
}

func TestAcceptJobCommandHandler_Handle_GeneratesHandoffCodes(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewAcceptJobCommand(42, 7)
	require.NoError(t, err)

	var pickupCode, deliveryCode string
	mockJobs := new(MockJobClaimer)
	mockJobs.On("Claim", ctx, int64(42), int64(7),
		mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			pickupCode = args.String(3)
			deliveryCode = args.String(4)
		}).
		Return(assignedJob(t, 42, 7, "A1B2C3", "D4E5F6"), nil).
		Once()

	handler := commands.NewAcceptJobCommandHandler(mockJobs)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Len(t, pickupCode, codes.HandoffCodeLength)
	assert.Len(t, deliveryCode, codes.HandoffCodeLength)
	assert.NotEqual(t, pickupCode, deliveryCode)
}

func TestAcceptJobCommandHandler_Handle_JobNotAvailable(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewAcceptJobCommand(42, 7)
	require.NoError(t, err)

	mockJobs := new(MockJobClaimer)
	mockJobs.On("Claim", ctx, int64(42), int64(7),
		mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(nil, errs.NewObjectNotFoundError("job", int64(42))).
		Once()

	handler := commands.NewAcceptJobCommandHandler(mockJobs)

	// Act
	claimed, err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrJobNotAvailable)
	assert.Nil(t, claimed)
	mockJobs.AssertExpectations(t)
}

func TestAcceptJobCommandHandler_Handle_StorageError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewAcceptJobCommand(42, 7)
	require.NoError(t, err)

	storageErr := errors.New("connection reset")
	mockJobs := new(MockJobClaimer)
	mockJobs.On("Claim", ctx, int64(42), int64(7),
		mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(nil, storageErr).
		Once()

	handler := commands.NewAcceptJobCommandHandler(mockJobs)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, storageErr)
	assert.NotErrorIs(t, err, commands.ErrJobNotAvailable)
}

func TestAcceptJobCommandHandler_Handle_NotConstructedCommand(t *testing.T) {
	// Arrange
	handler := commands.NewAcceptJobCommandHandler(new(MockJobClaimer))

	// Act
	_, err := handler.Handle(t.Context(), commands.AcceptJobCommand{})

	// Assert
	assert.ErrorIs(t, err, commands.ErrAcceptJobCommandIsNotConstructed)
}
