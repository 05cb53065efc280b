package clone

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/gclone/internal/execshell"
	"github.com/temirov/gclone/internal/locator"
	"github.com/temirov/gclone/internal/workspace"
)

const (
	gitCloneSubcommandConstant            = "clone"
	notRepositoryURLMessageConstant       = "text is not a recognized repository URL"
	cloneSkippedLogMessageConstant        = "clone skipped: target directory already has content"
	clonePlannedLogMessageConstant        = "clone planned"
	cloneCompletedLogMessageConstant      = "clone completed"
	logFieldTargetDirectoryConstant       = "target_directory"
	logFieldRepositoryLocatorConstant     = "repository_locator"
	notRepositoryURLErrorTemplateConstant = "%w: %q"
)

// Dependency configuration errors.
var (
	ErrGitExecutorNotConfigured = errors.New("git executor must be configured")
	ErrResolverNotConfigured    = errors.New("workspace resolver must be configured")

	// ErrNotRepositoryURL reports locator text that matches no recognized URL shape.
	ErrNotRepositoryURL = errors.New(notRepositoryURLMessageConstant)
)

// GitExecutor runs git commands.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// Outcome describes how a clone request concluded.
type Outcome string

// Clone outcomes.
const (
	OutcomeCloned  Outcome = "cloned"
	OutcomeSkipped Outcome = "skipped"
	OutcomePlanned Outcome = "planned"
)

// Options configure a single clone request.
type Options struct {
	LocatorText string
	BasePath    string
	DryRun      bool
}

// Result reports the resolved identity and the concluded outcome.
type Result struct {
	Identity        locator.Identity
	TargetDirectory string
	Outcome         Outcome
}

// ServiceDependencies configure the clone service.
type ServiceDependencies struct {
	GitExecutor GitExecutor
	Resolver    *workspace.Resolver
	FileSystem  workspace.FileSystem
	Logger      *zap.Logger
}

// Service clones recognized repository URLs into the workspace tree.
type Service struct {
	gitExecutor GitExecutor
	resolver    *workspace.Resolver
	fileSystem  workspace.FileSystem
	logger      *zap.Logger
}

// NewService validates dependencies and constructs a clone service.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.GitExecutor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	if dependencies.Resolver == nil {
		return nil, ErrResolverNotConfigured
	}

	resolvedFileSystem := dependencies.FileSystem
	if resolvedFileSystem == nil {
		resolvedFileSystem = workspace.NewOSFileSystem()
	}

	resolvedLogger := dependencies.Logger
	if resolvedLogger == nil {
		resolvedLogger = zap.NewNop()
	}

	return &Service{
		gitExecutor: dependencies.GitExecutor,
		resolver:    dependencies.Resolver,
		fileSystem:  resolvedFileSystem,
		logger:      resolvedLogger,
	}, nil
}

// Clone classifies the locator text and clones it into <base>/<owner>/<name>.
// A target directory that already holds content is reported as skipped rather
// than treated as a failure.
func (service *Service) Clone(executionContext context.Context, options Options) (Result, error) {
	trimmedLocator := strings.TrimSpace(options.LocatorText)
	identity, classified := locator.Classify(trimmedLocator)
	if !classified {
		return Result{}, fmt.Errorf(notRepositoryURLErrorTemplateConstant, ErrNotRepositoryURL, trimmedLocator)
	}

	targetDirectory, targetError := service.resolver.TargetPath(identity.Owner, identity.Name, options.BasePath)
	if targetError != nil {
		return Result{}, targetError
	}

	if service.directoryHasContent(targetDirectory) {
		service.logger.Info(
			cloneSkippedLogMessageConstant,
			zap.String(logFieldRepositoryLocatorConstant, trimmedLocator),
			zap.String(logFieldTargetDirectoryConstant, targetDirectory),
		)
		return Result{Identity: identity, TargetDirectory: targetDirectory, Outcome: OutcomeSkipped}, nil
	}

	if options.DryRun {
		service.logger.Info(
			clonePlannedLogMessageConstant,
			zap.String(logFieldRepositoryLocatorConstant, trimmedLocator),
			zap.String(logFieldTargetDirectoryConstant, targetDirectory),
		)
		return Result{Identity: identity, TargetDirectory: targetDirectory, Outcome: OutcomePlanned}, nil
	}

	if _, createError := service.resolver.Resolve(identity.Owner, identity.Name, options.BasePath); createError != nil {
		return Result{}, createError
	}

	commandDetails := execshell.CommandDetails{
		Arguments: []string{gitCloneSubcommandConstant, trimmedLocator, targetDirectory},
	}
	if _, executionError := service.gitExecutor.ExecuteGit(executionContext, commandDetails); executionError != nil {
		return Result{}, executionError
	}

	service.logger.Info(
		cloneCompletedLogMessageConstant,
		zap.String(logFieldRepositoryLocatorConstant, trimmedLocator),
		zap.String(logFieldTargetDirectoryConstant, targetDirectory),
	)
	return Result{Identity: identity, TargetDirectory: targetDirectory, Outcome: OutcomeCloned}, nil
}

func (service *Service) directoryHasContent(directoryPath string) bool {
	directoryEntries, readError := service.fileSystem.ReadDir(directoryPath)
	if readError != nil {
		return false
	}
	return len(directoryEntries) > 0
}
