package listing

import (
	"errors"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/temirov/gclone/internal/workspace"
)

const (
	gitMarkerDirectoryNameConstant       = ".git"
	unrecognizedFilterLogMessageConstant = "unrecognized time filter: listing without recency filter"
	logFieldFilterTextConstant           = "filter_text"
	hoursPerDayConstant                  = 24
)

// ErrResolverNotConfigured reports a listing service built without a resolver.
var ErrResolverNotConfigured = errors.New("workspace resolver must be configured")

// Entry describes one workspace project directory.
type Entry struct {
	Owner           string
	Name            string
	Path            string
	ModifiedAt      time.Time
	IsGitRepository bool
}

// Options configure a listing request.
type Options struct {
	BasePath string
	Last     string
	Limit    int
}

// Result carries the listed entries plus the pre-truncation total.
type Result struct {
	Entries          []Entry
	TotalFound       int
	FilterDays       int
	FilterRecognized bool
}

// ServiceDependencies configure the listing service.
type ServiceDependencies struct {
	Resolver    *workspace.Resolver
	FileSystem  workspace.FileSystem
	Logger      *zap.Logger
	NowProvider func() time.Time
}

// Service scans the workspace tree.
type Service struct {
	resolver    *workspace.Resolver
	fileSystem  workspace.FileSystem
	logger      *zap.Logger
	nowProvider func() time.Time
}

// NewService validates dependencies and constructs a listing service.
func NewService(dependencies ServiceDependencies) (*Service, error) {
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

	resolvedNowProvider := dependencies.NowProvider
	if resolvedNowProvider == nil {
		resolvedNowProvider = time.Now
	}

	return &Service{
		resolver:    dependencies.Resolver,
		fileSystem:  resolvedFileSystem,
		logger:      resolvedLogger,
		nowProvider: resolvedNowProvider,
	}, nil
}

// List enumerates <base>/<owner>/<name> directories newest first. An
// unrecognized recency filter is logged and ignored rather than failing the
// listing, and the limit applies after sorting.
func (service *Service) List(options Options) (Result, error) {
	resolvedBasePath, baseError := service.resolver.BasePath(options.BasePath)
	if baseError != nil {
		return Result{}, baseError
	}

	collectedEntries := service.scanWorkspace(resolvedBasePath)

	filterDays, filterRecognized := 0, false
	if len(options.Last) > 0 {
		filterDays, filterRecognized = ParseTimeFilter(options.Last)
		if !filterRecognized {
			service.logger.Warn(
				unrecognizedFilterLogMessageConstant,
				zap.String(logFieldFilterTextConstant, options.Last),
			)
		}
	}

	if filterRecognized {
		cutoffTime := service.nowProvider().Add(-time.Duration(filterDays) * hoursPerDayConstant * time.Hour)
		filteredEntries := collectedEntries[:0]
		for _, collectedEntry := range collectedEntries {
			if !collectedEntry.ModifiedAt.Before(cutoffTime) {
				filteredEntries = append(filteredEntries, collectedEntry)
			}
		}
		collectedEntries = filteredEntries
	}

	sort.SliceStable(collectedEntries, func(firstIndex int, secondIndex int) bool {
		return collectedEntries[firstIndex].ModifiedAt.After(collectedEntries[secondIndex].ModifiedAt)
	})

	totalFound := len(collectedEntries)
	if options.Limit > 0 && len(collectedEntries) > options.Limit {
		collectedEntries = collectedEntries[:options.Limit]
	}

	return Result{
		Entries:          collectedEntries,
		TotalFound:       totalFound,
		FilterDays:       filterDays,
		FilterRecognized: filterRecognized,
	}, nil
}

func (service *Service) scanWorkspace(basePath string) []Entry {
	collectedEntries := []Entry{}

	ownerEntries, baseReadError := service.fileSystem.ReadDir(basePath)
	if baseReadError != nil {
		return collectedEntries
	}

	for _, ownerEntry := range ownerEntries {
		if !ownerEntry.IsDir() {
			continue
		}

		ownerDirectory := filepath.Join(basePath, ownerEntry.Name())
		projectEntries, ownerReadError := service.fileSystem.ReadDir(ownerDirectory)
		if ownerReadError != nil {
			continue
		}

		for _, projectEntry := range projectEntries {
			projectDirectory := filepath.Join(ownerDirectory, projectEntry.Name())

			// Stat follows symlinks so grabbed directories list like clones.
			projectInfo, statError := service.fileSystem.Stat(projectDirectory)
			if statError != nil || !projectInfo.IsDir() {
				continue
			}

			collectedEntries = append(collectedEntries, Entry{
				Owner:           ownerEntry.Name(),
				Name:            projectEntry.Name(),
				Path:            projectDirectory,
				ModifiedAt:      projectInfo.ModTime(),
				IsGitRepository: service.isGitRepository(projectDirectory),
			})
		}
	}

	return collectedEntries
}

func (service *Service) isGitRepository(projectDirectory string) bool {
	_, statError := service.fileSystem.Stat(filepath.Join(projectDirectory, gitMarkerDirectoryNameConstant))
	return statError == nil
}
