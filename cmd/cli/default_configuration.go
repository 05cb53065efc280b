package cli

import "github.com/temirov/gclone/internal/opener"

// DefaultConfigurationValues exposes the baseline configuration map used when
// no configuration file or environment override is present.
func DefaultConfigurationValues() map[string]any {
	return map[string]any{
		openIDEConfigKeyConstant: opener.DefaultIDEName,
	}
}
