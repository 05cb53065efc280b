package opener

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	flagutils "github.com/temirov/gclone/internal/utils/flags"
	"github.com/temirov/gclone/internal/workspace"
)

const (
	commandUseNameConstant          = "open"
	commandUsageTemplateConstant    = commandUseNameConstant + " <project>"
	commandShortDescriptionConstant = "Open a workspace entry in an editor"
	commandLongDescriptionConstant  = "open launches the configured editor on a workspace entry. Projects are addressed as <owner>/<name> under the workspace base or as a filesystem path. The editor starts detached."
	commandExampleTemplateConstant  = "gclone open temirov/gclone --ide goland"
	ideFlagNameConstant             = "ide"
	ideFlagDescriptionConstant      = "Editor used to open the project"
	openedMessageTemplateConstant   = "OPENED: %s (%s)"
)

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the open command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	Service               *Service
	ConfigurationProvider func() CommandConfiguration
}

// Build constructs the open command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	configuration := builder.resolveConfiguration()

	command := &cobra.Command{
		Use:     commandUsageTemplateConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Example: commandExampleTemplateConstant,
		Args:    cobra.ExactArgs(1),
		RunE:    builder.run,
	}

	flagDefinitions := flagutils.DefaultExecutionFlagDefinitions()
	flagDefinitions.DryRun.Enabled = false
	flagutils.BindExecutionFlags(command, flagutils.ExecutionDefaults{}, flagDefinitions)

	ideFlagUsage := flagutils.FormatChoiceUsage(configuration.IDE, SupportedIDENames(), ideFlagDescriptionConstant)
	command.Flags().String(ideFlagNameConstant, configuration.IDE, ideFlagUsage)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	executionFlags, _ := flagutils.ResolveExecutionFlags(command)

	// Flag defaults are seeded before the configuration file loads, so an
	// unchanged flag defers to the runtime configuration.
	selectedIDE, _ := command.Flags().GetString(ideFlagNameConstant)
	if !command.Flags().Changed(ideFlagNameConstant) {
		selectedIDE = builder.resolveConfiguration().IDE
	}

	service, serviceError := builder.resolveService()
	if serviceError != nil {
		return serviceError
	}

	result, openError := service.Open(command.Context(), Options{
		Project:  arguments[0],
		IDE:      selectedIDE,
		BasePath: executionFlags.BasePath,
	})
	if openError != nil {
		return openError
	}

	fmt.Fprintln(command.OutOrStdout(), fmt.Sprintf(openedMessageTemplateConstant, result.ProjectDirectory, result.EditorExecutable))
	return nil
}

func (builder *CommandBuilder) resolveService() (*Service, error) {
	if builder.Service != nil {
		return builder.Service, nil
	}
	return NewService(ServiceDependencies{
		Resolver: workspace.NewResolver(),
		Logger:   builder.resolveLogger(),
	})
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
