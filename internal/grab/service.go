package grab

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/gclone/internal/clone"
	"github.com/temirov/gclone/internal/locator"
	"github.com/temirov/gclone/internal/workspace"
)

const (
	emptySourceMessageConstant      = "source must not be empty"
	sourceNotFoundMessageConstant   = "source is neither a repository URL nor an existing path"
	grabLinkedLogMessageConstant    = "grab linked directory"
	grabCopiedLogMessageConstant    = "grab copied file"
	grabExistingLogMessageConstant  = "grab skipped: destination already exists"
	grabSkippedLogMessageConstant   = "grab skipped: target directory already holds content"
	logFieldSourcePathConstant      = "source_path"
	logFieldDestinationPathConstant = "destination_path"
	logFieldTargetDirectoryConstant = "target_directory"
	sourceNotFoundTemplateConstant  = "%w: %q"
)

// Validation and dependency errors.
var (
	ErrEmptySource               = errors.New(emptySourceMessageConstant)
	ErrSourceNotFound            = errors.New(sourceNotFoundMessageConstant)
	ErrCloneServiceNotConfigured = errors.New("clone service must be configured")
	ErrResolverNotConfigured     = errors.New("workspace resolver must be configured")
)

// Cloner delegates recognized repository URLs to the clone flow.
type Cloner interface {
	Clone(executionContext context.Context, options clone.Options) (clone.Result, error)
}

// Outcome describes how a grab request concluded.
type Outcome string

// Grab outcomes.
const (
	OutcomeLinked   Outcome = "linked"
	OutcomeCopied   Outcome = "copied"
	OutcomeCloned   Outcome = "cloned"
	OutcomeSkipped  Outcome = "skipped"
	OutcomeExisting Outcome = "existing"
	OutcomePlanned  Outcome = "planned"
)

// Options configure a single grab request.
type Options struct {
	Source   string
	BasePath string
	DryRun   bool
}

// Result reports what the grab produced.
type Result struct {
	Outcome         Outcome
	SourcePath      string
	TargetDirectory string
	DestinationPath string
	CloneResult     *clone.Result
}

// ServiceDependencies configure the grab service.
type ServiceDependencies struct {
	Cloner     Cloner
	Resolver   *workspace.Resolver
	FileSystem workspace.FileSystem
	Logger     *zap.Logger
}

// Service organizes URLs and local paths under the workspace tree.
type Service struct {
	cloner     Cloner
	resolver   *workspace.Resolver
	fileSystem workspace.FileSystem
	logger     *zap.Logger
}

// NewService validates dependencies and constructs a grab service.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.Cloner == nil {
		return nil, ErrCloneServiceNotConfigured
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
		cloner:     dependencies.Cloner,
		resolver:   dependencies.Resolver,
		fileSystem: resolvedFileSystem,
		logger:     resolvedLogger,
	}, nil
}

// Grab clones recognized repository URLs and otherwise links or copies the
// local source into <base>/<derived-name>. Existing destinations and target
// directories that already hold content are reported and left untouched.
func (service *Service) Grab(executionContext context.Context, options Options) (Result, error) {
	trimmedSource := strings.TrimSpace(options.Source)
	if len(trimmedSource) == 0 {
		return Result{}, ErrEmptySource
	}

	if _, classified := locator.Classify(trimmedSource); classified {
		cloneResult, cloneError := service.cloner.Clone(executionContext, clone.Options{
			LocatorText: trimmedSource,
			BasePath:    options.BasePath,
			DryRun:      options.DryRun,
		})
		if cloneError != nil {
			return Result{}, cloneError
		}
		return Result{
			Outcome:         cloneOutcome(cloneResult.Outcome),
			SourcePath:      trimmedSource,
			TargetDirectory: cloneResult.TargetDirectory,
			CloneResult:     &cloneResult,
		}, nil
	}

	if _, statError := service.fileSystem.Stat(trimmedSource); statError != nil {
		return Result{}, fmt.Errorf(sourceNotFoundTemplateConstant, ErrSourceNotFound, trimmedSource)
	}

	absoluteSource, absoluteError := service.fileSystem.Abs(trimmedSource)
	if absoluteError != nil {
		return Result{}, absoluteError
	}

	targetDirectory, sourceIsDirectory, targetError := service.resolver.LocalTargetPath(absoluteSource, options.BasePath)
	if targetError != nil {
		return Result{}, targetError
	}

	destinationPath := filepath.Join(targetDirectory, filepath.Base(absoluteSource))
	if _, lstatError := service.fileSystem.Lstat(destinationPath); lstatError == nil {
		service.logger.Info(
			grabExistingLogMessageConstant,
			zap.String(logFieldSourcePathConstant, absoluteSource),
			zap.String(logFieldDestinationPathConstant, destinationPath),
		)
		return Result{
			Outcome:         OutcomeExisting,
			SourcePath:      absoluteSource,
			TargetDirectory: targetDirectory,
			DestinationPath: destinationPath,
		}, nil
	}

	if service.directoryHasContent(targetDirectory) {
		service.logger.Info(
			grabSkippedLogMessageConstant,
			zap.String(logFieldSourcePathConstant, absoluteSource),
			zap.String(logFieldTargetDirectoryConstant, targetDirectory),
		)
		return Result{
			Outcome:         OutcomeSkipped,
			SourcePath:      absoluteSource,
			TargetDirectory: targetDirectory,
			DestinationPath: destinationPath,
		}, nil
	}

	if options.DryRun {
		return Result{
			Outcome:         OutcomePlanned,
			SourcePath:      absoluteSource,
			TargetDirectory: targetDirectory,
			DestinationPath: destinationPath,
		}, nil
	}

	if _, createError := service.resolver.ResolveLocal(absoluteSource, options.BasePath); createError != nil {
		return Result{}, createError
	}

	if sourceIsDirectory {
		if linkError := service.fileSystem.Symlink(absoluteSource, destinationPath); linkError != nil {
			return Result{}, linkError
		}
		service.logger.Info(
			grabLinkedLogMessageConstant,
			zap.String(logFieldSourcePathConstant, absoluteSource),
			zap.String(logFieldDestinationPathConstant, destinationPath),
		)
		return Result{
			Outcome:         OutcomeLinked,
			SourcePath:      absoluteSource,
			TargetDirectory: targetDirectory,
			DestinationPath: destinationPath,
		}, nil
	}

	if copyError := service.copyFile(absoluteSource, destinationPath); copyError != nil {
		return Result{}, copyError
	}
	service.logger.Info(
		grabCopiedLogMessageConstant,
		zap.String(logFieldSourcePathConstant, absoluteSource),
		zap.String(logFieldDestinationPathConstant, destinationPath),
	)
	return Result{
		Outcome:         OutcomeCopied,
		SourcePath:      absoluteSource,
		TargetDirectory: targetDirectory,
		DestinationPath: destinationPath,
	}, nil
}

func (service *Service) directoryHasContent(directoryPath string) bool {
	directoryEntries, readError := service.fileSystem.ReadDir(directoryPath)
	if readError != nil {
		return false
	}
	return len(directoryEntries) > 0
}

func (service *Service) copyFile(sourcePath string, destinationPath string) error {
	sourceContent, readError := service.fileSystem.ReadFile(sourcePath)
	if readError != nil {
		return readError
	}

	sourceInfo, statError := service.fileSystem.Stat(sourcePath)
	if statError != nil {
		return statError
	}

	return service.fileSystem.WriteFile(destinationPath, sourceContent, sourceInfo.Mode().Perm())
}

func cloneOutcome(outcome clone.Outcome) Outcome {
	switch outcome {
	case clone.OutcomeSkipped:
		return OutcomeSkipped
	case clone.OutcomePlanned:
		return OutcomePlanned
	default:
		return OutcomeCloned
	}
}
