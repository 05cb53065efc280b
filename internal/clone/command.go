package clone

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/gclone/internal/clipboard"
	"github.com/temirov/gclone/internal/execshell"
	flagutils "github.com/temirov/gclone/internal/utils/flags"
	"github.com/temirov/gclone/internal/workspace"
)

const (
	commandUseNameConstant                 = "clone"
	commandUsageTemplateConstant           = commandUseNameConstant + " [url]"
	commandShortDescriptionConstant        = "Clone a repository URL into the organized workspace tree"
	commandLongDescriptionConstant         = "clone classifies the provided repository URL, resolves <base>/<owner>/<name>, and clones the repository there. Without an argument the clipboard is consulted for a plausible URL. Targets that already hold content are reported and left untouched.\n\nRecognized URL shapes:\n  user@host:owner/name.git\n  https://host/owner/name.git\n  https://host/owner/name"
	commandExampleTemplateConstant         = "gclone clone https://github.com/temirov/gclone.git"
	missingLocatorMessageConstant          = "no repository URL provided and the clipboard holds no usable candidate"
	clonedMessageTemplateConstant          = "CLONED: %s -> %s"
	skippedMessageTemplateConstant         = "SKIPPED (already present): %s"
	plannedMessageTemplateConstant         = "PLAN: clone %s -> %s"
	parsedMessageTemplateConstant          = "PARSED: owner=%s name=%s kind=%s"
	clipboardSourceMessageTemplateConstant = "Using clipboard URL: %s"
)

// ErrMissingLocator reports that neither an argument nor the clipboard supplied a URL candidate.
var ErrMissingLocator = errors.New(missingLocatorMessageConstant)

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// ClipboardReader supplies clipboard text when no argument is given.
type ClipboardReader interface {
	Read(executionContext context.Context) (string, bool)
}

// CommandBuilder assembles the clone command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	GitExecutor           GitExecutor
	ClipboardReader       ClipboardReader
	ConfigurationProvider func() CommandConfiguration
}

// Build constructs the clone command.
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

// Run executes the clone flow on behalf of the provided command. It backs both
// the clone subcommand and the bare root invocation.
func (builder *CommandBuilder) Run(command *cobra.Command, arguments []string) error {
	return builder.run(command, arguments)
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()
	logger := builder.resolveLogger()

	executionFlags, _ := flagutils.ResolveExecutionFlags(command)

	basePath := configuration.BasePath
	if executionFlags.BasePathSet {
		basePath = executionFlags.BasePath
	}

	gitExecutor, executorError := builder.resolveGitExecutor(logger)
	if executorError != nil {
		return executorError
	}

	locatorText, locatorError := builder.resolveLocatorText(command, arguments, logger, gitExecutor)
	if locatorError != nil {
		return locatorError
	}

	service, serviceError := NewService(ServiceDependencies{
		GitExecutor: gitExecutor,
		Resolver:    workspace.NewResolver(),
		Logger:      logger,
	})
	if serviceError != nil {
		return serviceError
	}

	result, cloneError := service.Clone(command.Context(), Options{
		LocatorText: locatorText,
		BasePath:    basePath,
		DryRun:      executionFlags.DryRun,
	})
	if cloneError != nil {
		return cloneError
	}

	if executionFlags.Verbose {
		fmt.Fprintln(command.OutOrStdout(), fmt.Sprintf(
			parsedMessageTemplateConstant,
			result.Identity.Owner,
			result.Identity.Name,
			result.Identity.Kind,
		))
	}

	switch result.Outcome {
	case OutcomeSkipped:
		fmt.Fprintln(command.OutOrStdout(), fmt.Sprintf(skippedMessageTemplateConstant, result.TargetDirectory))
	case OutcomePlanned:
		fmt.Fprintln(command.OutOrStdout(), fmt.Sprintf(plannedMessageTemplateConstant, locatorText, result.TargetDirectory))
	default:
		fmt.Fprintln(command.OutOrStdout(), fmt.Sprintf(clonedMessageTemplateConstant, locatorText, result.TargetDirectory))
	}

	return nil
}

func (builder *CommandBuilder) resolveLocatorText(command *cobra.Command, arguments []string, logger *zap.Logger, gitExecutor GitExecutor) (string, error) {
	if len(arguments) > 0 {
		trimmedArgument := strings.TrimSpace(arguments[0])
		if len(trimmedArgument) > 0 {
			return trimmedArgument, nil
		}
	}

	clipboardReader := builder.resolveClipboardReader(logger, gitExecutor)
	clipboardText, found := clipboardReader.Read(command.Context())
	if !found {
		return "", ErrMissingLocator
	}

	candidateText, plausible := clipboard.URLCandidate(clipboardText)
	if !plausible {
		return "", ErrMissingLocator
	}

	fmt.Fprintln(command.OutOrStdout(), fmt.Sprintf(clipboardSourceMessageTemplateConstant, candidateText))
	return candidateText, nil
}

func (builder *CommandBuilder) resolveClipboardReader(logger *zap.Logger, gitExecutor GitExecutor) ClipboardReader {
	if builder.ClipboardReader != nil {
		return builder.ClipboardReader
	}

	toolExecutor, _ := gitExecutor.(clipboard.ToolExecutor)
	return clipboard.NewReader(logger, toolExecutor)
}

func (builder *CommandBuilder) resolveGitExecutor(logger *zap.Logger) (GitExecutor, error) {
	if builder.GitExecutor != nil {
		return builder.GitExecutor, nil
	}
	return execshell.NewShellExecutor(logger, execshell.NewOSCommandRunner())
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
