package opener

import "strings"

// CommandConfiguration captures configurable open defaults.
type CommandConfiguration struct {
	IDE string `mapstructure:"ide"`
}

// DefaultCommandConfiguration returns the baseline open configuration.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{IDE: DefaultIDEName}
}

// Sanitize trims configured values and restores the default editor when empty.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	configuration.IDE = strings.ToLower(strings.TrimSpace(configuration.IDE))
	if len(configuration.IDE) == 0 {
		configuration.IDE = DefaultIDEName
	}
	return configuration
}
