package grab

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/gclone/internal/clipboard"
	"github.com/temirov/gclone/internal/clone"
	"github.com/temirov/gclone/internal/execshell"
	flagutils "github.com/temirov/gclone/internal/utils/flags"
	"github.com/temirov/gclone/internal/workspace"
)

const (
	commandUseNameConstant          = "grab"
	commandUsageTemplateConstant    = commandUseNameConstant + " [url-or-path]"
	commandShortDescriptionConstant = "Bring a URL or local path into the organized workspace tree"
	commandLongDescriptionConstant  = "grab clones repository URLs the same way clone does. Local directories are symlinked and local files copied into a derived <base>/<name> directory, so scattered sources gain a canonical home without moving them. Without an argument the clipboard is consulted."
	missingSourceMessageConstant    = "no source provided and the clipboard holds no usable candidate"
	commandExampleTemplateConstant  = "gclone grab /tmp/scratch-project"
	linkedMessageTemplateConstant   = "LINKED: %s -> %s"
	copiedMessageTemplateConstant   = "COPIED: %s -> %s"
	clonedMessageTemplateConstant   = "CLONED: %s -> %s"
	skippedMessageTemplateConstant  = "SKIPPED (already present): %s"
	existingMessageTemplateConstant = "EXISTS: %s"
	plannedMessageTemplateConstant  = "PLAN: grab %s -> %s"
	resolvedMessageTemplateConstant = "RESOLVED: %s"
)

// ErrMissingSource reports that neither an argument nor the clipboard supplied a source.
var ErrMissingSource = errors.New(missingSourceMessageConstant)

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// ClipboardReader supplies clipboard text when no argument is given.
type ClipboardReader interface {
	Read(executionContext context.Context) (string, bool)
}

// CommandBuilder assembles the grab command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	GitExecutor           clone.GitExecutor
	Cloner                Cloner
	ClipboardReader       ClipboardReader
	ConfigurationProvider func() CommandConfiguration
}

// Build constructs the grab command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     commandUsageTemplateConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Example: commandExampleTemplateConstant,
		Args:    cobra.MaximumNArgs(1),
		RunE:    builder.run,
	}

	flagutils.BindExecutionFlags(command, flagutils.ExecutionDefaults{}, flagutils.DefaultExecutionFlagDefinitions())

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()
	logger := builder.resolveLogger()

	executionFlags, _ := flagutils.ResolveExecutionFlags(command)

	basePath := configuration.BasePath
	if executionFlags.BasePathSet {
		basePath = executionFlags.BasePath
	}

	cloner, clonerError := builder.resolveCloner(logger)
	if clonerError != nil {
		return clonerError
	}

	sourceText, sourceError := builder.resolveSourceText(command, arguments, logger)
	if sourceError != nil {
		return sourceError
	}

	service, serviceError := NewService(ServiceDependencies{
		Cloner:   cloner,
		Resolver: workspace.NewResolver(),
		Logger:   logger,
	})
	if serviceError != nil {
		return serviceError
	}

	result, grabError := service.Grab(command.Context(), Options{
		Source:   sourceText,
		BasePath: basePath,
		DryRun:   executionFlags.DryRun,
	})
	if grabError != nil {
		return grabError
	}

	if executionFlags.Verbose && len(result.TargetDirectory) > 0 {
		fmt.Fprintln(command.OutOrStdout(), fmt.Sprintf(resolvedMessageTemplateConstant, result.TargetDirectory))
	}

	switch result.Outcome {
	case OutcomeLinked:
		fmt.Fprintln(command.OutOrStdout(), fmt.Sprintf(linkedMessageTemplateConstant, result.SourcePath, result.DestinationPath))
	case OutcomeCopied:
		fmt.Fprintln(command.OutOrStdout(), fmt.Sprintf(copiedMessageTemplateConstant, result.SourcePath, result.DestinationPath))
	case OutcomeCloned:
		fmt.Fprintln(command.OutOrStdout(), fmt.Sprintf(clonedMessageTemplateConstant, result.SourcePath, result.TargetDirectory))
	case OutcomeSkipped:
		fmt.Fprintln(command.OutOrStdout(), fmt.Sprintf(skippedMessageTemplateConstant, result.TargetDirectory))
	case OutcomeExisting:
		fmt.Fprintln(command.OutOrStdout(), fmt.Sprintf(existingMessageTemplateConstant, result.DestinationPath))
	case OutcomePlanned:
		destination := result.DestinationPath
		if len(destination) == 0 {
			destination = result.TargetDirectory
		}
		fmt.Fprintln(command.OutOrStdout(), fmt.Sprintf(plannedMessageTemplateConstant, result.SourcePath, destination))
	}

	return nil
}

func (builder *CommandBuilder) resolveSourceText(command *cobra.Command, arguments []string, logger *zap.Logger) (string, error) {
	if len(arguments) > 0 {
		trimmedArgument := strings.TrimSpace(arguments[0])
		if len(trimmedArgument) > 0 {
			return trimmedArgument, nil
		}
	}

	clipboardReader := builder.ClipboardReader
	if clipboardReader == nil {
		clipboardReader = clipboard.NewReader(logger, builder.resolveToolExecutor(logger))
	}

	clipboardText, found := clipboardReader.Read(command.Context())
	if !found {
		return "", ErrMissingSource
	}

	candidateText, plausible := clipboard.URLCandidate(clipboardText)
	if !plausible {
		return "", ErrMissingSource
	}

	return candidateText, nil
}

func (builder *CommandBuilder) resolveToolExecutor(logger *zap.Logger) clipboard.ToolExecutor {
	if toolExecutor, supported := builder.GitExecutor.(clipboard.ToolExecutor); supported {
		return toolExecutor
	}
	if shellExecutor, executorError := execshell.NewShellExecutor(logger, execshell.NewOSCommandRunner()); executorError == nil {
		return shellExecutor
	}
	return nil
}

func (builder *CommandBuilder) resolveCloner(logger *zap.Logger) (Cloner, error) {
	if builder.Cloner != nil {
		return builder.Cloner, nil
	}

	gitExecutor := builder.GitExecutor
	if gitExecutor == nil {
		shellExecutor, executorError := execshell.NewShellExecutor(logger, execshell.NewOSCommandRunner())
		if executorError != nil {
			return nil, executorError
		}
		gitExecutor = shellExecutor
	}

	return clone.NewService(clone.ServiceDependencies{
		GitExecutor: gitExecutor,
		Resolver:    workspace.NewResolver(),
		Logger:      logger,
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
