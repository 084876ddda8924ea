package job_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReadyJob(t *testing.T) *job.Job {
	t.Helper()

	j, err := job.NewJob(42, uuid.New(), "Crown for patient #17", "25.00", time.Now())
	require.NoError(t, err)
	return j
}

func TestNewJob(t *testing.T) {
	t.Run("creates_ready_job_without_courier", func(t *testing.T) {
		j := newReadyJob(t)

		assert.Equal(t, int64(42), j.ID())
		assert.Equal(t, job.Ready, j.Status())
		assert.Nil(t, j.Courier())
		assert.Empty(t, j.PickupCode())
		assert.Empty(t, j.DeliveryCode())
		require.NoError(t, j.Validate())
	})

	t.Run("rejects_non_positive_id", func(t *testing.T) {
		_, err := job.NewJob(0, uuid.New(), "desc", "10.00", time.Now())
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_nil_organization", func(t *testing.T) {
		_, err := job.NewJob(1, uuid.Nil, "desc", "10.00", time.Now())
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestJob_Assign(t *testing.T) {
	t.Run("binds_courier_status_and_codes_together", func(t *testing.T) {
		j := newReadyJob(t)

		require.NoError(t, j.Assign(7, "A1B2C3", "X9Y8Z7"))

		assert.Equal(t, job.Assigned, j.Status())
		require.NotNil(t, j.Courier())
		assert.Equal(t, int64(7), *j.Courier())
		assert.Equal(t, "A1B2C3", j.PickupCode())
		assert.Equal(t, "X9Y8Z7", j.DeliveryCode())
	})

	t.Run("rejects_second_assignment", func(t *testing.T) {
		j := newReadyJob(t)
		require.NoError(t, j.Assign(7, "A1B2C3", "X9Y8Z7"))

		err := j.Assign(8, "NEWPC1", "NEWDC1")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		// Losing claims must never touch the original binding or its codes.
		assert.Equal(t, int64(7), *j.Courier())
		assert.Equal(t, "A1B2C3", j.PickupCode())
		assert.Equal(t, "X9Y8Z7", j.DeliveryCode())
	})

	t.Run("rejects_missing_codes", func(t *testing.T) {
		j := newReadyJob(t)
		require.ErrorIs(t, j.Assign(7, "", "X9Y8Z7"), errs.ErrValueIsRequired)
		require.ErrorIs(t, j.Assign(7, "A1B2C3", ""), errs.ErrValueIsRequired)
		assert.Equal(t, job.Ready, j.Status())
	})

	t.Run("rejects_non_positive_courier", func(t *testing.T) {
		j := newReadyJob(t)
		require.ErrorIs(t, j.Assign(0, "A1B2C3", "X9Y8Z7"), errs.ErrValueIsRequired)
	})
}

func TestRestoreJob(t *testing.T) {
	orgID := uuid.New()
	courierID := int64(7)

	t.Run("restores_assigned_job", func(t *testing.T) {
		j, err := job.RestoreJob(42, orgID, "desc", job.Assigned, &courierID,
			"A1B2C3", "X9Y8Z7", "25.00", time.Now())
		require.NoError(t, err)
		assert.Equal(t, job.Assigned, j.Status())
		assert.Equal(t, courierID, *j.Courier())
	})

	t.Run("rejects_ready_job_with_courier", func(t *testing.T) {
		_, err := job.RestoreJob(42, orgID, "desc", job.Ready, &courierID,
			"", "", "25.00", time.Now())
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_assigned_job_without_courier", func(t *testing.T) {
		_, err := job.RestoreJob(42, orgID, "desc", job.Assigned, nil,
			"A1B2C3", "X9Y8Z7", "25.00", time.Now())
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		_, err := job.RestoreJob(42, orgID, "desc", job.Unknown, nil,
			"", "", "25.00", time.Now())
		require.Error(t, err)
	})
}

func TestJob_Validate(t *testing.T) {
	t.Run("nil_job_is_invalid", func(t *testing.T) {
		var j *job.Job
		require.ErrorIs(t, j.Validate(), job.ErrJobIsNotConstructed)
	})

	t.Run("zero_value_is_invalid", func(t *testing.T) {
		j := &job.Job{}
		require.ErrorIs(t, j.Validate(), job.ErrJobIsNotConstructed)
	})
}
