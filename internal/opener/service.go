package opener

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/gclone/internal/workspace"
)

const (
	// DefaultIDEName is the editor used when none is configured.
	DefaultIDEName = "code"

	projectSeparatorConstant          = "/"
	emptyProjectMessageConstant       = "project must not be empty"
	unknownIDEMessageConstant         = "unknown IDE"
	projectNotFoundMessageConstant    = "project directory does not exist"
	openerStartedLogMessageConstant   = "editor launched"
	logFieldEditorExecutableConstant  = "editor_executable"
	logFieldProjectDirectoryConstant  = "project_directory"
	unknownIDEErrorTemplateConstant   = "%w %q: supported editors are %s"
	projectNotFoundTemplateConstant   = "%w: %s"
	supportedEditorsSeparatorConstant = ", "
)

// Validation and dependency errors.
var (
	ErrEmptyProject          = errors.New(emptyProjectMessageConstant)
	ErrUnknownIDE            = errors.New(unknownIDEMessageConstant)
	ErrProjectNotFound       = errors.New(projectNotFoundMessageConstant)
	ErrResolverNotConfigured = errors.New("workspace resolver must be configured")
)

// editorExecutables maps IDE names to their launcher executables.
var editorExecutables = map[string]string{
	"code":   "code",
	"cursor": "cursor",
	"idea":   "idea",
	"goland": "goland",
	"zed":    "zed",
}

// SupportedIDENames returns the recognized editor names in sorted order.
func SupportedIDENames() []string {
	editorNames := make([]string, 0, len(editorExecutables))
	for editorName := range editorExecutables {
		editorNames = append(editorNames, editorName)
	}
	sort.Strings(editorNames)
	return editorNames
}

// ProcessStarter launches a detached process.
type ProcessStarter interface {
	Start(executionContext context.Context, executableName string, arguments []string) error
}

// OSProcessStarter launches processes without waiting for them to exit.
type OSProcessStarter struct{}

// NewOSProcessStarter constructs an operating system backed process starter.
func NewOSProcessStarter() *OSProcessStarter {
	return &OSProcessStarter{}
}

// Start launches the executable and returns without waiting for completion.
func (starter *OSProcessStarter) Start(executionContext context.Context, executableName string, arguments []string) error {
	launchCommand := exec.CommandContext(executionContext, executableName, arguments...)
	return launchCommand.Start()
}

// Options configure a single open request.
type Options struct {
	Project  string
	IDE      string
	BasePath string
}

// Result reports the launched editor and the opened directory.
type Result struct {
	EditorExecutable string
	ProjectDirectory string
}

// ServiceDependencies configure the opener service.
type ServiceDependencies struct {
	Resolver       *workspace.Resolver
	FileSystem     workspace.FileSystem
	ProcessStarter ProcessStarter
	Logger         *zap.Logger
}

// Service opens workspace entries in an editor.
type Service struct {
	resolver       *workspace.Resolver
	fileSystem     workspace.FileSystem
	processStarter ProcessStarter
	logger         *zap.Logger
}

// NewService validates dependencies and constructs an opener service.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.Resolver == nil {
		return nil, ErrResolverNotConfigured
	}

	resolvedFileSystem := dependencies.FileSystem
	if resolvedFileSystem == nil {
		resolvedFileSystem = workspace.NewOSFileSystem()
	}

	resolvedProcessStarter := dependencies.ProcessStarter
	if resolvedProcessStarter == nil {
		resolvedProcessStarter = NewOSProcessStarter()
	}

	resolvedLogger := dependencies.Logger
	if resolvedLogger == nil {
		resolvedLogger = zap.NewNop()
	}

	return &Service{
		resolver:       dependencies.Resolver,
		fileSystem:     resolvedFileSystem,
		processStarter: resolvedProcessStarter,
		logger:         resolvedLogger,
	}, nil
}

// Open resolves the project reference and launches the requested editor on it.
func (service *Service) Open(executionContext context.Context, options Options) (Result, error) {
	trimmedProject := strings.TrimSpace(options.Project)
	if len(trimmedProject) == 0 {
		return Result{}, ErrEmptyProject
	}

	editorExecutable, editorError := service.resolveEditor(options.IDE)
	if editorError != nil {
		return Result{}, editorError
	}

	projectDirectory, directoryError := service.resolveProjectDirectory(trimmedProject, options.BasePath)
	if directoryError != nil {
		return Result{}, directoryError
	}

	if startError := service.processStarter.Start(executionContext, editorExecutable, []string{projectDirectory}); startError != nil {
		return Result{}, startError
	}

	service.logger.Info(
		openerStartedLogMessageConstant,
		zap.String(logFieldEditorExecutableConstant, editorExecutable),
		zap.String(logFieldProjectDirectoryConstant, projectDirectory),
	)
	return Result{EditorExecutable: editorExecutable, ProjectDirectory: projectDirectory}, nil
}

func (service *Service) resolveEditor(ideName string) (string, error) {
	normalizedName := strings.ToLower(strings.TrimSpace(ideName))
	if len(normalizedName) == 0 {
		normalizedName = DefaultIDEName
	}

	editorExecutable, known := editorExecutables[normalizedName]
	if !known {
		supportedEditors := strings.Join(SupportedIDENames(), supportedEditorsSeparatorConstant)
		return "", fmt.Errorf(unknownIDEErrorTemplateConstant, ErrUnknownIDE, normalizedName, supportedEditors)
	}
	return editorExecutable, nil
}

func (service *Service) resolveProjectDirectory(projectReference string, basePath string) (string, error) {
	candidateDirectories := []string{}

	segments := strings.Split(projectReference, projectSeparatorConstant)
	if len(segments) == 2 && !filepath.IsAbs(projectReference) {
		resolvedBasePath, baseError := service.resolver.BasePath(basePath)
		if baseError != nil {
			return "", baseError
		}
		candidateDirectories = append(candidateDirectories, filepath.Join(resolvedBasePath, segments[0], segments[1]))
	}
	candidateDirectories = append(candidateDirectories, projectReference)

	for _, candidateDirectory := range candidateDirectories {
		candidateInfo, statError := service.fileSystem.Stat(candidateDirectory)
		if statError == nil && candidateInfo.IsDir() {
			return candidateDirectory, nil
		}
	}

	return "", fmt.Errorf(projectNotFoundTemplateConstant, ErrProjectNotFound, projectReference)
}
