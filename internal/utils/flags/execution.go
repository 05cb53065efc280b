// Package flags provides helpers for binding standardized execution flags to Cobra commands.
package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	// DryRunFlagName exposes the shared dry-run flag name.
	DryRunFlagName = "dry-run"
	// DryRunFlagUsage describes the shared dry-run flag purpose.
	DryRunFlagUsage = "Preview operations without making changes"
	// VerboseFlagName exposes the shared verbose flag name.
	VerboseFlagName = "verbose"
	// VerboseFlagShorthand provides the shorthand for the verbose flag.
	VerboseFlagShorthand = "v"
	// VerboseFlagUsage describes the shared verbose flag purpose.
	VerboseFlagUsage = "Report intermediate parse and resolution steps"
	// BasePathFlagName exposes the shared base-path flag name.
	BasePathFlagName = "base-path"
	// BasePathFlagUsage describes the shared base-path flag purpose.
	BasePathFlagUsage = "Base directory for the organized workspace tree"
)

// ExecutionDefaults describes default flag values shared across commands.
type ExecutionDefaults struct {
	DryRun   bool
	Verbose  bool
	BasePath string
}

// ExecutionFlagDefinition captures a single flag's configuration.
type ExecutionFlagDefinition struct {
	Name      string
	Usage     string
	Shorthand string
	Enabled   bool
}

// ExecutionFlagDefinitions groups execution flag definitions.
type ExecutionFlagDefinitions struct {
	DryRun   ExecutionFlagDefinition
	Verbose  ExecutionFlagDefinition
	BasePath ExecutionFlagDefinition
}

// DefaultExecutionFlagDefinitions returns the standard dry-run, verbose, and base-path definitions.
func DefaultExecutionFlagDefinitions() ExecutionFlagDefinitions {
	return ExecutionFlagDefinitions{
		DryRun:   ExecutionFlagDefinition{Name: DryRunFlagName, Usage: DryRunFlagUsage, Enabled: true},
		Verbose:  ExecutionFlagDefinition{Name: VerboseFlagName, Usage: VerboseFlagUsage, Shorthand: VerboseFlagShorthand, Enabled: true},
		BasePath: ExecutionFlagDefinition{Name: BasePathFlagName, Usage: BasePathFlagUsage, Enabled: true},
	}
}

// BindExecutionFlags attaches standardized execution flags to the provided command.
func BindExecutionFlags(command *cobra.Command, defaults ExecutionDefaults, definitions ExecutionFlagDefinitions) {
	if command == nil {
		return
	}

	flagSet := command.Flags()

	bindBoolFlag(flagSet, definitions.DryRun, defaults.DryRun)
	bindBoolFlag(flagSet, definitions.Verbose, defaults.Verbose)
	bindStringFlag(flagSet, definitions.BasePath, defaults.BasePath)
}

// ExecutionFlagValues carries resolved execution flag values and whether each was set.
type ExecutionFlagValues struct {
	DryRun      bool
	DryRunSet   bool
	Verbose     bool
	VerboseSet  bool
	BasePath    string
	BasePathSet bool
}

// ResolveExecutionFlags reads the standardized execution flags from the command.
func ResolveExecutionFlags(command *cobra.Command) (ExecutionFlagValues, bool) {
	if command == nil {
		return ExecutionFlagValues{}, false
	}

	flagSet := command.Flags()
	resolvedValues := ExecutionFlagValues{}
	flagsAvailable := false

	if dryRunFlag := flagSet.Lookup(DryRunFlagName); dryRunFlag != nil {
		flagsAvailable = true
		if dryRunValue, dryRunError := flagSet.GetBool(DryRunFlagName); dryRunError == nil {
			resolvedValues.DryRun = dryRunValue
			resolvedValues.DryRunSet = dryRunFlag.Changed
		}
	}

	if verboseFlag := flagSet.Lookup(VerboseFlagName); verboseFlag != nil {
		flagsAvailable = true
		if verboseValue, verboseError := flagSet.GetBool(VerboseFlagName); verboseError == nil {
			resolvedValues.Verbose = verboseValue
			resolvedValues.VerboseSet = verboseFlag.Changed
		}
	}

	if basePathFlag := flagSet.Lookup(BasePathFlagName); basePathFlag != nil {
		flagsAvailable = true
		if basePathValue, basePathError := flagSet.GetString(BasePathFlagName); basePathError == nil {
			resolvedValues.BasePath = basePathValue
			resolvedValues.BasePathSet = basePathFlag.Changed
		}
	}

	return resolvedValues, flagsAvailable
}

func bindBoolFlag(flagSet *pflag.FlagSet, definition ExecutionFlagDefinition, defaultValue bool) {
	if flagSet == nil {
		return
	}
	if !definition.Enabled {
		return
	}
	if len(definition.Name) == 0 {
		return
	}

	if len(definition.Shorthand) > 0 {
		flagSet.BoolP(definition.Name, definition.Shorthand, defaultValue, definition.Usage)
		return
	}

	flagSet.Bool(definition.Name, defaultValue, definition.Usage)
}

func bindStringFlag(flagSet *pflag.FlagSet, definition ExecutionFlagDefinition, defaultValue string) {
	if flagSet == nil {
		return
	}
	if !definition.Enabled {
		return
	}
	if len(definition.Name) == 0 {
		return
	}

	flagSet.String(definition.Name, defaultValue, definition.Usage)
}
