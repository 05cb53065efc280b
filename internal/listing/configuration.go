package listing

import "strings"

// CommandConfiguration captures configurable listing defaults.
type CommandConfiguration struct {
	Last  string `mapstructure:"last"`
	Limit int    `mapstructure:"limit"`
}

// DefaultCommandConfiguration returns the baseline listing configuration.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{}
}

// Sanitize trims configured values and discards negative limits.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	configuration.Last = strings.TrimSpace(configuration.Last)
	if configuration.Limit < 0 {
		configuration.Limit = 0
	}
	return configuration
}
