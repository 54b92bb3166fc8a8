package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStartBakingHandler struct {
	mock.Mock
}

func (m *MockStartBakingHandler) Handle(ctx context.Context, cmd commands.StartBakingCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockFinishBakingHandler struct {
	mock.Mock
}

func (m *MockFinishBakingHandler) Handle(ctx context.Context, cmd commands.FinishBakingCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validCommand[T interface{ Validate() error }]() any {
	return mock.MatchedBy(func(cmd T) bool { return cmd.Validate() == nil })
}

func TestOvenLoadingJob_Run(t *testing.T) {
	t.Run("bakes with a constructed command", func(t *testing.T) {
		handler := new(MockStartBakingHandler)
		handler.On("Handle", mock.Anything, validCommand[commands.StartBakingCommand]()).Return(nil).Once()
		logger, buf := bufferLogger()

		jobs.NewOvenLoadingJob(handler, "* * * * * *", logger).Run(t.Context())

		handler.AssertExpectations(t)
		assert.NotContains(t, buf.String(), "failed")
	})

	t.Run("empty queue is not logged", func(t *testing.T) {
		handler := new(MockStartBakingHandler)
		handler.On("Handle", mock.Anything, mock.Anything).Return(commands.ErrNoOrderToBake).Once()
		logger, buf := bufferLogger()

		jobs.NewOvenLoadingJob(handler, "* * * * * *", logger).Run(t.Context())

		assert.Empty(t, buf.String())
	})

	t.Run("other errors are logged", func(t *testing.T) {
		handler := new(MockStartBakingHandler)
		handler.On("Handle", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()
		logger, buf := bufferLogger()

		jobs.NewOvenLoadingJob(handler, "* * * * * *", logger).Run(t.Context())

		assert.Contains(t, buf.String(), "Oven loading job failed")
		assert.Contains(t, buf.String(), "db down")
		assert.Contains(t, buf.String(), "component=oven_loading_job")
	})
}

func TestOvenUnloadingJob_Run(t *testing.T) {
	t.Run("serves with a constructed command", func(t *testing.T) {
		handler := new(MockFinishBakingHandler)
		handler.On("Handle", mock.Anything, validCommand[commands.FinishBakingCommand]()).Return(nil).Once()
		logger, buf := bufferLogger()

		jobs.NewOvenUnloadingJob(handler, "* * * * * *", logger).Run(t.Context())

		handler.AssertExpectations(t)
		assert.Empty(t, buf.String())
	})

	t.Run("errors are logged", func(t *testing.T) {
		handler := new(MockFinishBakingHandler)
		handler.On("Handle", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()
		logger, buf := bufferLogger()

		jobs.NewOvenUnloadingJob(handler, "* * * * * *", logger).Run(t.Context())

		assert.Contains(t, buf.String(), "Oven unloading job failed")
	})
}

func TestOvenLoadingJob_StartTicks(t *testing.T) {
	ticked := make(chan struct{}, 1)
	handler := new(MockStartBakingHandler)
	handler.On("Handle", mock.Anything, mock.Anything).Return(nil).Run(func(mock.Arguments) {
		select {
		case ticked <- struct{}{}:
		default:
		}
	})

	job := jobs.NewOvenLoadingJob(handler, "* * * * * *", discardLogger())
	require.NoError(t, job.Start())
	defer job.Stop()

	select {
	case <-ticked:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not run within 3 seconds")
	}
}

func TestOvenJobs_InvalidSchedule(t *testing.T) {
	require.Error(t, jobs.NewOvenLoadingJob(new(MockStartBakingHandler), "every minute", discardLogger()).Start())
	require.Error(t, jobs.NewOvenUnloadingJob(new(MockFinishBakingHandler), "* * *", discardLogger()).Start())
}

func TestJobManager(t *testing.T) {
	t.Run("starts and stops all jobs", func(t *testing.T) {
		startBaking := new(MockStartBakingHandler)
		startBaking.On("Handle", mock.Anything, mock.Anything).Return(commands.ErrNoOrderToBake).Maybe()
		finishBaking := new(MockFinishBakingHandler)
		finishBaking.On("Handle", mock.Anything, mock.Anything).Return(nil).Maybe()

		jm := jobs.NewJobManager(startBaking, finishBaking, jobs.DefaultSchedules, discardLogger())

		require.NoError(t, jm.StartAll())
		jm.StopAll()
	})

	t.Run("fails on a bad bake schedule", func(t *testing.T) {
		jm := jobs.NewJobManager(new(MockStartBakingHandler), new(MockFinishBakingHandler),
			jobs.Schedules{Bake: "bad", Serve: jobs.DefaultSchedules.Serve}, discardLogger())

		err := jm.StartAll()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "oven loading job")
	})

	t.Run("fails on a bad serve schedule", func(t *testing.T) {
		startBaking := new(MockStartBakingHandler)
		startBaking.On("Handle", mock.Anything, mock.Anything).Return(commands.ErrNoOrderToBake).Maybe()

		jm := jobs.NewJobManager(startBaking, new(MockFinishBakingHandler),
			jobs.Schedules{Bake: jobs.DefaultSchedules.Bake, Serve: "bad"}, discardLogger())

		err := jm.StartAll()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "oven unloading job")
	})
}
