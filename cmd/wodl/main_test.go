package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/wodl/internal/app"
	"go.trai.ch/wodl/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newComponents(ctrl *gomock.Controller) (*app.Components, *mocks.MockConfigLoader, *mocks.MockLogger, *mocks.MockTelemetry) {
	loader := mocks.NewMockConfigLoader(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	telemetry := mocks.NewMockTelemetry(ctrl)

	application := app.New(
		loader,
		logger,
		mocks.NewMockUpstream(ctrl),
		mocks.NewMockCacheStore(ctrl),
		mocks.NewMockRecordSink(ctrl),
		mocks.NewMockPrompter(ctrl),
		telemetry,
	)
	return &app.Components{App: application, Logger: logger, Telemetry: telemetry}, loader, logger, telemetry
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	components, _, _, telemetry := newComponents(ctrl)
	telemetry.EXPECT().Shutdown(gomock.Any()).Return(nil)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	components, loader, logger, telemetry := newComponents(ctrl)

	loadErr := errors.New("load failed")
	loader.EXPECT().Load("broken.yaml").Return(nil, loadErr)
	logger.EXPECT().Error(loadErr)
	telemetry.EXPECT().Shutdown(gomock.Any()).Return(nil)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	exitCode := run(context.Background(), []string{"cache", "clean", "--config", "broken.yaml"}, new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}
