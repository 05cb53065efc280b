package clone

import "strings"

// CommandConfiguration captures configurable clone defaults.
type CommandConfiguration struct {
	BasePath string `mapstructure:"base_path"`
}

// DefaultCommandConfiguration returns the baseline clone configuration.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{}
}

// Sanitize trims configured values.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	configuration.BasePath = strings.TrimSpace(configuration.BasePath)
	return configuration
}
