package execshell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildStartedMessageForCloneIncludesURLAndTarget(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments: []string{"clone", "https://example.com/alice/proj.git", "/workspace/alice/proj"},
		},
	}

	message := formatter.BuildStartedMessage(command)

	require.Equal(t, "Cloning https://example.com/alice/proj.git into /workspace/alice/proj", message)
}

func TestBuildFailureMessageForCloneIncludesStandardError(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments: []string{"clone", "https://example.com/alice/proj.git", "/workspace/alice/proj"},
		},
	}
	result := ExecutionResult{ExitCode: 128, StandardError: "fatal: repository not found"}

	message := formatter.BuildFailureMessage(command, result)

	require.Equal(t, "Failed to clone https://example.com/alice/proj.git into /workspace/alice/proj (exit code 128: fatal: repository not found)", message)
}

func TestBuildExecutionFailureMessageForClipboardReader(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name:    CommandXClip,
		Details: CommandDetails{Arguments: []string{"-o", "-selection", "clipboard"}},
	}

	message := formatter.BuildExecutionFailureMessage(command, errors.New("executable file not found"))

	require.Equal(t, "Clipboard reader xclip unavailable: executable file not found", message)
}

func TestBuildSuccessMessageForGenericCommandUsesLabel(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments:        []string{"status", "--porcelain"},
			WorkingDirectory: "/workspace/repo",
		},
	}

	message := formatter.BuildSuccessMessage(command)

	require.Equal(t, "Completed git status --porcelain (in /workspace/repo)", message)
}
