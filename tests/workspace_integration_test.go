package tests

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrabIntegrationLinksDirectoryAndListsIt(testInstance *testing.T) {
	baseDirectory := testInstance.TempDir()
	sourceDirectory := filepath.Join(testInstance.TempDir(), "toolbox")
	require.NoError(testInstance, os.MkdirAll(sourceDirectory, 0o755))

	grabOutput, grabError := runCLI(testInstance, nil,
		"grab", sourceDirectory,
		"--base-path", baseDirectory,
	)
	require.NoError(testInstance, grabError, grabOutput)
	require.Contains(testInstance, grabOutput, "LINKED: "+sourceDirectory)

	linkTarget, readlinkError := os.Readlink(filepath.Join(baseDirectory, "toolbox", "toolbox"))
	require.NoError(testInstance, readlinkError)
	require.Equal(testInstance, sourceDirectory, linkTarget)

	repeatOutput, repeatError := runCLI(testInstance, nil,
		"grab", sourceDirectory,
		"--base-path", baseDirectory,
	)
	require.NoError(testInstance, repeatError, repeatOutput)
	require.Contains(testInstance, repeatOutput, "EXISTS:")

	listOutput, listError := runCLI(testInstance, nil,
		"list",
		"--base-path", baseDirectory,
	)
	require.NoError(testInstance, listError, listOutput)
	require.Contains(testInstance, listOutput, "toolbox/toolbox")
}

func TestGrabIntegrationCopiesFile(testInstance *testing.T) {
	baseDirectory := testInstance.TempDir()
	sourceFile := filepath.Join(testInstance.TempDir(), "notes.txt")
	require.NoError(testInstance, os.WriteFile(sourceFile, []byte("remember"), 0o644))

	grabOutput, grabError := runCLI(testInstance, nil,
		"grab", sourceFile,
		"--base-path", baseDirectory,
	)
	require.NoError(testInstance, grabError, grabOutput)
	require.Contains(testInstance, grabOutput, "COPIED: "+sourceFile)

	copiedContent, readError := os.ReadFile(filepath.Join(baseDirectory, "notes", "notes.txt"))
	require.NoError(testInstance, readError)
	require.Equal(testInstance, []byte("remember"), copiedContent)
}

func TestGrabIntegrationSkipsPopulatedTarget(testInstance *testing.T) {
	baseDirectory := testInstance.TempDir()
	sourceDirectory := filepath.Join(testInstance.TempDir(), "toolbox")
	require.NoError(testInstance, os.MkdirAll(sourceDirectory, 0o755))

	targetDirectory := filepath.Join(baseDirectory, "toolbox")
	require.NoError(testInstance, os.MkdirAll(targetDirectory, 0o755))
	require.NoError(testInstance, os.WriteFile(filepath.Join(targetDirectory, "stray.txt"), []byte("unrelated"), 0o644))

	grabOutput, grabError := runCLI(testInstance, nil,
		"grab", sourceDirectory,
		"--base-path", baseDirectory,
	)
	require.NoError(testInstance, grabError, grabOutput)
	require.Contains(testInstance, grabOutput, "SKIPPED (already present): "+targetDirectory)

	_, lstatError := os.Lstat(filepath.Join(targetDirectory, "toolbox"))
	require.True(testInstance, os.IsNotExist(lstatError))
}

func TestListIntegrationUsesConfiguredLimit(testInstance *testing.T) {
	baseDirectory := testInstance.TempDir()
	require.NoError(testInstance, os.MkdirAll(filepath.Join(baseDirectory, "alice", "first"), 0o755))
	require.NoError(testInstance, os.MkdirAll(filepath.Join(baseDirectory, "alice", "second"), 0o755))

	configurationDirectory := testInstance.TempDir()
	configurationPath := filepath.Join(configurationDirectory, "config.yaml")
	configurationContent := "tools:\n  list:\n    limit: 1\n"
	require.NoError(testInstance, os.WriteFile(configurationPath, []byte(configurationContent), 0o600))

	listOutput, listError := runCLI(testInstance, nil,
		"list",
		"--config", configurationPath,
		"--base-path", baseDirectory,
	)
	require.NoError(testInstance, listError, listOutput)
	require.Contains(testInstance, listOutput, "Showing 1 of 2 entries")
}

func TestCloneIntegrationUsesConfiguredBasePath(testInstance *testing.T) {
	baseDirectory := testInstance.TempDir()
	configurationDirectory := testInstance.TempDir()
	configurationPath := filepath.Join(configurationDirectory, "config.yaml")
	configurationContent := fmt.Sprintf("tools:\n  clone:\n    base_path: %s\n", baseDirectory)
	require.NoError(testInstance, os.WriteFile(configurationPath, []byte(configurationContent), 0o600))

	outputText, runError := runCLI(testInstance, nil,
		"clone", "https://github.com/alice/proj.git",
		"--config", configurationPath,
		"--dry-run",
	)
	require.NoError(testInstance, runError, outputText)
	require.Contains(testInstance, outputText, filepath.Join(baseDirectory, "alice", "proj"))
}
