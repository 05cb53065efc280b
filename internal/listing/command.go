package listing

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	flagutils "github.com/temirov/gclone/internal/utils/flags"
	"github.com/temirov/gclone/internal/workspace"
)

const (
	commandUseNameConstant               = "list"
	commandAliasNameConstant             = "ls"
	commandShortDescriptionConstant      = "List workspace entries newest first"
	commandLongDescriptionConstant       = "list walks <base>/<owner>/<name>, sorts entries by modification time, and annotates git repositories. Recency filters such as 'week' or a bare day count narrow the listing; unrecognized filters are ignored with a warning."
	commandExampleTemplateConstant       = "gclone list --last week --limit 10"
	lastFlagNameConstant                 = "last"
	lastFlagUsageConstant                = "Only show entries modified within the span (today, week, month, 3 months, 6 months, year, or a day count)"
	limitFlagNameConstant                = "limit"
	limitFlagUsageConstant               = "Maximum number of entries to show (0 shows all)"
	entryLineTemplateConstant            = "%s/%s\t%s%s"
	gitMarkerSuffixConstant              = "\t[git]"
	noEntriesMessageConstant             = "No entries found"
	truncationMessageTemplateConstant    = "Showing %d of %d entries"
	filterAppliedMessageTemplateConstant = "Filtering to entries modified within %d days"
	modifiedTimeLayoutConstant           = "2006-01-02 15:04"
)

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the list command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	Service               *Service
	ConfigurationProvider func() CommandConfiguration
}

// Build constructs the list command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     commandUseNameConstant,
		Aliases: []string{commandAliasNameConstant},
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Example: commandExampleTemplateConstant,
		Args:    cobra.NoArgs,
		RunE:    builder.run,
	}

	flagDefinitions := flagutils.DefaultExecutionFlagDefinitions()
	flagDefinitions.DryRun.Enabled = false
	flagutils.BindExecutionFlags(command, flagutils.ExecutionDefaults{}, flagDefinitions)

	configuration := builder.resolveConfiguration()
	command.Flags().String(lastFlagNameConstant, configuration.Last, lastFlagUsageConstant)
	command.Flags().Int(limitFlagNameConstant, configuration.Limit, limitFlagUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, _ []string) error {
	executionFlags, _ := flagutils.ResolveExecutionFlags(command)

	// Flag defaults are seeded before the configuration file loads, so an
	// unchanged flag defers to the runtime configuration.
	configuration := builder.resolveConfiguration()
	lastFilter, _ := command.Flags().GetString(lastFlagNameConstant)
	if !command.Flags().Changed(lastFlagNameConstant) {
		lastFilter = configuration.Last
	}
	entryLimit, _ := command.Flags().GetInt(limitFlagNameConstant)
	if !command.Flags().Changed(limitFlagNameConstant) {
		entryLimit = configuration.Limit
	}

	service, serviceError := builder.resolveService()
	if serviceError != nil {
		return serviceError
	}

	result, listError := service.List(Options{
		BasePath: executionFlags.BasePath,
		Last:     strings.TrimSpace(lastFilter),
		Limit:    entryLimit,
	})
	if listError != nil {
		return listError
	}

	if executionFlags.Verbose && result.FilterRecognized {
		fmt.Fprintln(command.OutOrStdout(), fmt.Sprintf(filterAppliedMessageTemplateConstant, result.FilterDays))
	}

	if len(result.Entries) == 0 {
		fmt.Fprintln(command.OutOrStdout(), noEntriesMessageConstant)
		return nil
	}

	for _, workspaceEntry := range result.Entries {
		gitSuffix := ""
		if workspaceEntry.IsGitRepository {
			gitSuffix = gitMarkerSuffixConstant
		}
		fmt.Fprintln(command.OutOrStdout(), fmt.Sprintf(
			entryLineTemplateConstant,
			workspaceEntry.Owner,
			workspaceEntry.Name,
			workspaceEntry.ModifiedAt.Format(modifiedTimeLayoutConstant),
			gitSuffix,
		))
	}

	if result.TotalFound > len(result.Entries) {
		fmt.Fprintln(command.OutOrStdout(), fmt.Sprintf(truncationMessageTemplateConstant, len(result.Entries), result.TotalFound))
	}

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
