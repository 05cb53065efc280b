package opener_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/gclone/internal/opener"
	"github.com/temirov/gclone/internal/workspace"
)

type recordingProcessStarter struct {
	startedExecutables []string
	startedArguments   [][]string
	startError         error
}

func (starter *recordingProcessStarter) Start(_ context.Context, executableName string, arguments []string) error {
	starter.startedExecutables = append(starter.startedExecutables, executableName)
	starter.startedArguments = append(starter.startedArguments, arguments)
	return starter.startError
}

func newOpenerService(t *testing.T, processStarter opener.ProcessStarter) *opener.Service {
	t.Helper()
	service, serviceError := opener.NewService(opener.ServiceDependencies{
		Resolver:       workspace.NewResolver(),
		ProcessStarter: processStarter,
	})
	require.NoError(t, serviceError)
	return service
}

func TestServiceRequiresResolver(t *testing.T) {
	_, serviceError := opener.NewService(opener.ServiceDependencies{})
	require.ErrorIs(t, serviceError, opener.ErrResolverNotConfigured)
}

func TestServiceOpenResolvesOwnerNameShorthand(t *testing.T) {
	baseDirectory := t.TempDir()
	projectDirectory := filepath.Join(baseDirectory, "alice", "proj")
	require.NoError(t, os.MkdirAll(projectDirectory, 0o755))

	processStarter := &recordingProcessStarter{}
	service := newOpenerService(t, processStarter)

	result, openError := service.Open(context.Background(), opener.Options{
		Project:  "alice/proj",
		BasePath: baseDirectory,
	})
	require.NoError(t, openError)
	require.Equal(t, projectDirectory, result.ProjectDirectory)
	require.Equal(t, "code", result.EditorExecutable)

	require.Equal(t, []string{"code"}, processStarter.startedExecutables)
	require.Equal(t, [][]string{{projectDirectory}}, processStarter.startedArguments)
}

func TestServiceOpenAcceptsFilesystemPath(t *testing.T) {
	projectDirectory := filepath.Join(t.TempDir(), "scratch")
	require.NoError(t, os.MkdirAll(projectDirectory, 0o755))

	processStarter := &recordingProcessStarter{}
	service := newOpenerService(t, processStarter)

	result, openError := service.Open(context.Background(), opener.Options{
		Project: projectDirectory,
		IDE:     "goland",
	})
	require.NoError(t, openError)
	require.Equal(t, projectDirectory, result.ProjectDirectory)
	require.Equal(t, "goland", result.EditorExecutable)
}

func TestServiceOpenValidatesEditorSelection(t *testing.T) {
	projectDirectory := filepath.Join(t.TempDir(), "scratch")
	require.NoError(t, os.MkdirAll(projectDirectory, 0o755))

	processStarter := &recordingProcessStarter{}
	service := newOpenerService(t, processStarter)

	_, openError := service.Open(context.Background(), opener.Options{
		Project: projectDirectory,
		IDE:     "emacs",
	})
	require.ErrorIs(t, openError, opener.ErrUnknownIDE)
	require.Contains(t, openError.Error(), "code, cursor, goland, idea, zed")
	require.Empty(t, processStarter.startedExecutables)
}

func TestServiceOpenRejectsMissingProject(t *testing.T) {
	processStarter := &recordingProcessStarter{}
	service := newOpenerService(t, processStarter)

	_, openError := service.Open(context.Background(), opener.Options{
		Project:  "alice/absent",
		BasePath: t.TempDir(),
	})
	require.ErrorIs(t, openError, opener.ErrProjectNotFound)
	require.Empty(t, processStarter.startedExecutables)
}

func TestServiceOpenRejectsEmptyProject(t *testing.T) {
	service := newOpenerService(t, &recordingProcessStarter{})

	_, openError := service.Open(context.Background(), opener.Options{Project: "   "})
	require.ErrorIs(t, openError, opener.ErrEmptyProject)
}

func TestSupportedIDENamesAreSorted(t *testing.T) {
	require.Equal(t, []string{"code", "cursor", "goland", "idea", "zed"}, opener.SupportedIDENames())
}
