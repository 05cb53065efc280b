package tests

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	integrationCommandTimeout                 = 30 * time.Second
	integrationHelpUsagePrefixConstant        = "Usage:"
	integrationHelpDescriptionSnippetConstant = "gclone keeps every repository and grabbed source under <base>/<owner>/<name>"
)

func runCLI(testInstance *testing.T, environment []string, arguments ...string) (string, error) {
	testInstance.Helper()

	currentWorkingDirectory, workingDirectoryError := os.Getwd()
	require.NoError(testInstance, workingDirectoryError)
	repositoryRootDirectory := filepath.Dir(currentWorkingDirectory)

	executionContext, cancelFunction := context.WithTimeout(context.Background(), integrationCommandTimeout)
	defer cancelFunction()

	commandArguments := append([]string{"run", "."}, arguments...)
	command := exec.CommandContext(executionContext, "go", commandArguments...)
	command.Dir = repositoryRootDirectory
	command.Env = append(os.Environ(), environment...)

	outputBytes, runError := command.CombinedOutput()
	return string(outputBytes), runError
}

func TestCLIIntegrationDisplaysHelp(testInstance *testing.T) {
	outputText, runError := runCLI(testInstance, nil, "--help")
	require.NoError(testInstance, runError, outputText)
	require.Contains(testInstance, outputText, integrationHelpUsagePrefixConstant)
	require.Contains(testInstance, outputText, integrationHelpDescriptionSnippetConstant)
}

func TestCLIIntegrationCloneDryRunReportsPlan(testInstance *testing.T) {
	baseDirectory := testInstance.TempDir()

	outputText, runError := runCLI(testInstance, nil,
		"clone", "https://github.com/alice/proj.git",
		"--base-path", baseDirectory,
		"--dry-run",
	)
	require.NoError(testInstance, runError, outputText)
	require.Contains(testInstance, outputText, "PLAN: clone https://github.com/alice/proj.git")
	require.Contains(testInstance, outputText, filepath.Join(baseDirectory, "alice", "proj"))

	_, statError := os.Stat(filepath.Join(baseDirectory, "alice"))
	require.True(testInstance, os.IsNotExist(statError))
}

func TestCLIIntegrationRootArgumentBehavesLikeClone(testInstance *testing.T) {
	baseDirectory := testInstance.TempDir()

	outputText, runError := runCLI(testInstance, nil,
		"https://github.com/alice/proj.git",
		"--base-path", baseDirectory,
		"--dry-run",
	)
	require.NoError(testInstance, runError, outputText)
	require.Contains(testInstance, outputText, "PLAN: clone https://github.com/alice/proj.git")
}

func TestCLIIntegrationRejectsUnrecognizedLocator(testInstance *testing.T) {
	outputText, runError := runCLI(testInstance, nil,
		"clone", "definitely not a url",
		"--base-path", testInstance.TempDir(),
		"--dry-run",
	)
	require.Error(testInstance, runError)
	require.Contains(testInstance, outputText, "not a recognized repository URL")
}
