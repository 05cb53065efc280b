package clipboard

import (
	"context"
	"strings"

	nativeclipboard "github.com/atotto/clipboard"
	"go.uber.org/zap"

	"github.com/temirov/gclone/internal/execshell"
)

const (
	nativeProviderNameConstant         = "native"
	providerFailedMessageConstant      = "clipboard provider failed"
	providerEmptyMessageConstant       = "clipboard provider returned no text"
	logFieldProviderNameConstant       = "provider_name"
	xclipOutputFlagConstant            = "-o"
	xclipSelectionFlagConstant         = "-selection"
	xclipClipboardSelectionConstant    = "clipboard"
	waylandPasteNoNewlineFlagConstant  = "-n"
	xselClipboardFlagConstant          = "--clipboard"
	xselOutputFlagConstant             = "--output"
)

// ToolExecutor runs external clipboard reader commands.
type ToolExecutor interface {
	ExecuteTool(executionContext context.Context, toolName execshell.CommandName, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// ProviderFunction attempts a single clipboard read strategy.
type ProviderFunction func(executionContext context.Context) (string, error)

// Provider pairs a strategy with a diagnostic name.
type Provider struct {
	Name string
	Read ProviderFunction
}

// Reader walks an ordered provider list and returns the first non-empty text.
type Reader struct {
	logger    *zap.Logger
	providers []Provider
}

// NewReader constructs a Reader with the default provider chain.
func NewReader(logger *zap.Logger, toolExecutor ToolExecutor) *Reader {
	return NewReaderWithProviders(logger, defaultProviders(toolExecutor))
}

// NewReaderWithProviders constructs a Reader with a custom provider list.
func NewReaderWithProviders(logger *zap.Logger, providers []Provider) *Reader {
	resolvedLogger := logger
	if resolvedLogger == nil {
		resolvedLogger = zap.NewNop()
	}

	return &Reader{logger: resolvedLogger, providers: providers}
}

// Read returns the first non-empty clipboard text produced by the provider chain.
func (reader *Reader) Read(executionContext context.Context) (string, bool) {
	for _, provider := range reader.providers {
		providedText, providerError := provider.Read(executionContext)
		if providerError != nil {
			reader.logger.Debug(
				providerFailedMessageConstant,
				zap.String(logFieldProviderNameConstant, provider.Name),
				zap.Error(providerError),
			)
			continue
		}

		trimmedText := strings.TrimSpace(providedText)
		if len(trimmedText) == 0 {
			reader.logger.Debug(
				providerEmptyMessageConstant,
				zap.String(logFieldProviderNameConstant, provider.Name),
			)
			continue
		}

		return trimmedText, true
	}

	return "", false
}

func defaultProviders(toolExecutor ToolExecutor) []Provider {
	providers := []Provider{
		{
			Name: nativeProviderNameConstant,
			Read: func(context.Context) (string, error) {
				return nativeclipboard.ReadAll()
			},
		},
	}

	if toolExecutor == nil {
		return providers
	}

	commandProviders := []struct {
		toolName  execshell.CommandName
		arguments []string
	}{
		{toolName: execshell.CommandWaylandPaste, arguments: []string{waylandPasteNoNewlineFlagConstant}},
		{toolName: execshell.CommandXClip, arguments: []string{xclipOutputFlagConstant, xclipSelectionFlagConstant, xclipClipboardSelectionConstant}},
		{toolName: execshell.CommandXSel, arguments: []string{xselClipboardFlagConstant, xselOutputFlagConstant}},
		{toolName: execshell.CommandPasteboard, arguments: nil},
	}

	for _, commandProvider := range commandProviders {
		toolName := commandProvider.toolName
		arguments := commandProvider.arguments
		providers = append(providers, Provider{
			Name: string(toolName),
			Read: func(executionContext context.Context) (string, error) {
				executionResult, executionError := toolExecutor.ExecuteTool(executionContext, toolName, execshell.CommandDetails{Arguments: arguments})
				if executionError != nil {
					return "", executionError
				}
				return executionResult.StandardOutput, nil
			},
		})
	}

	return providers
}
