package cli

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type failingSyncCore struct {
	zapcore.Core
	syncError error
}

func (core *failingSyncCore) Sync() error {
	return core.syncError
}

func TestNewApplicationRegistersSubcommands(t *testing.T) {
	application := NewApplication()

	registeredNames := map[string]bool{}
	for _, registeredCommand := range application.rootCommand.Commands() {
		registeredNames[registeredCommand.Name()] = true
	}

	for _, expectedName := range []string{"clone", "grab", "list", "open"} {
		require.True(t, registeredNames[expectedName], "expected subcommand %s", expectedName)
	}
}

func TestNewApplicationBindsPersistentFlags(t *testing.T) {
	application := NewApplication()

	for _, expectedFlagName := range []string{"config", "log-level", "log-format"} {
		require.NotNil(t, application.rootCommand.PersistentFlags().Lookup(expectedFlagName))
	}
	for _, expectedFlagName := range []string{"dry-run", "verbose", "base-path"} {
		require.NotNil(t, application.rootCommand.Flags().Lookup(expectedFlagName))
	}
}

func TestSyncLoggerInstanceToleratesUnsupportedSync(t *testing.T) {
	application := &Application{}

	require.NoError(t, application.syncLoggerInstance(nil))
	require.NoError(t, application.syncLoggerInstance(zap.NewNop()))

	syncErrors := []error{syscall.ENOTSUP, syscall.EINVAL}
	for _, syncError := range syncErrors {
		require.NoError(t, application.syncLoggerInstance(newFailingSyncLogger(syncError)))
	}
}

func newFailingSyncLogger(syncError error) *zap.Logger {
	return zap.New(&failingSyncCore{Core: zapcore.NewNopCore(), syncError: syncError})
}
