package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	pathutils "github.com/temirov/gclone/internal/utils/path"
)

const (
	defaultBaseDirectoryNameConstant      = "github"
	workspaceDirectoryPermissionsConstant = 0o755
	emptyOwnerMessageConstant             = "owner must not be empty"
	emptyNameMessageConstant              = "name must not be empty"
	emptySourcePathMessageConstant        = "source path must not be empty"
	homeDirectoryErrorTemplateConstant    = "unable to determine home directory: %w"
	createDirectoryErrorTemplateConstant  = "unable to create %s: %w"
)

// Sentinel validation errors surfaced by the resolver.
var (
	ErrEmptyOwner      = errors.New(emptyOwnerMessageConstant)
	ErrEmptyName       = errors.New(emptyNameMessageConstant)
	ErrEmptySourcePath = errors.New(emptySourcePathMessageConstant)
)

// Resolver computes and creates canonical target directories for workspace entries.
type Resolver struct {
	fileSystem            FileSystem
	homeDirectoryProvider pathutils.HomeDirectoryProvider
	homeExpander          *pathutils.HomeExpander
}

// NewResolver constructs a Resolver backed by the operating system.
func NewResolver() *Resolver {
	return NewResolverWithDependencies(nil, nil)
}

// NewResolverWithDependencies constructs a Resolver with custom collaborators for testing.
func NewResolverWithDependencies(fileSystem FileSystem, homeDirectoryProvider pathutils.HomeDirectoryProvider) *Resolver {
	resolvedFileSystem := fileSystem
	if resolvedFileSystem == nil {
		resolvedFileSystem = NewOSFileSystem()
	}

	return &Resolver{
		fileSystem:            resolvedFileSystem,
		homeDirectoryProvider: homeDirectoryProvider,
		homeExpander:          pathutils.NewHomeExpanderWithProvider(homeDirectoryProvider),
	}
}

// DefaultBasePath returns the workspace base directory under the user's home directory.
func (resolver *Resolver) DefaultBasePath() (string, error) {
	homeDirectory, homeError := resolver.resolveHomeDirectory()
	if homeError != nil {
		return "", fmt.Errorf(homeDirectoryErrorTemplateConstant, homeError)
	}
	return filepath.Join(homeDirectory, defaultBaseDirectoryNameConstant), nil
}

// TargetPath computes <base>/<owner>/<name> without creating the directory.
func (resolver *Resolver) TargetPath(owner string, name string, basePath string) (string, error) {
	if len(strings.TrimSpace(owner)) == 0 {
		return "", ErrEmptyOwner
	}
	if len(strings.TrimSpace(name)) == 0 {
		return "", ErrEmptyName
	}

	resolvedBasePath, baseError := resolver.resolveBasePath(basePath)
	if baseError != nil {
		return "", baseError
	}

	return filepath.Join(resolvedBasePath, owner, name), nil
}

// Resolve computes <base>/<owner>/<name> and creates it recursively.
// Calling Resolve repeatedly with the same arguments is idempotent.
func (resolver *Resolver) Resolve(owner string, name string, basePath string) (string, error) {
	targetDirectory, targetError := resolver.TargetPath(owner, name, basePath)
	if targetError != nil {
		return "", targetError
	}

	if createError := resolver.fileSystem.MkdirAll(targetDirectory, workspaceDirectoryPermissionsConstant); createError != nil {
		return "", fmt.Errorf(createDirectoryErrorTemplateConstant, targetDirectory, createError)
	}

	return targetDirectory, nil
}

// LocalTargetPath computes <base>/<derived-name> for a local source path without
// creating the directory, and reports whether the source is a directory.
func (resolver *Resolver) LocalTargetPath(sourcePath string, basePath string) (string, bool, error) {
	trimmedSourcePath := strings.TrimSpace(sourcePath)
	if len(trimmedSourcePath) == 0 {
		return "", false, ErrEmptySourcePath
	}

	sourceInfo, statError := resolver.fileSystem.Stat(trimmedSourcePath)
	if statError != nil {
		return "", false, statError
	}

	resolvedBasePath, baseError := resolver.resolveBasePath(basePath)
	if baseError != nil {
		return "", false, baseError
	}

	derivedName := DeriveEntryName(trimmedSourcePath, sourceInfo.IsDir())
	return filepath.Join(resolvedBasePath, derivedName), sourceInfo.IsDir(), nil
}

// ResolveLocal computes <base>/<derived-name> for a local source path and creates it.
// The derived name is the directory name, or the filename stem for regular files.
func (resolver *Resolver) ResolveLocal(sourcePath string, basePath string) (string, error) {
	targetDirectory, _, targetError := resolver.LocalTargetPath(sourcePath, basePath)
	if targetError != nil {
		return "", targetError
	}

	if createError := resolver.fileSystem.MkdirAll(targetDirectory, workspaceDirectoryPermissionsConstant); createError != nil {
		return "", fmt.Errorf(createDirectoryErrorTemplateConstant, targetDirectory, createError)
	}

	return targetDirectory, nil
}

// DeriveEntryName computes the workspace entry name for a local source path.
func DeriveEntryName(sourcePath string, isDirectory bool) string {
	baseName := filepath.Base(filepath.Clean(sourcePath))
	if isDirectory {
		return baseName
	}

	extension := filepath.Ext(baseName)
	stem := strings.TrimSuffix(baseName, extension)
	if len(stem) == 0 {
		return baseName
	}
	return stem
}

// BasePath expands the configured base path, falling back to the default
// workspace location when the value is empty.
func (resolver *Resolver) BasePath(basePath string) (string, error) {
	return resolver.resolveBasePath(basePath)
}

func (resolver *Resolver) resolveBasePath(basePath string) (string, error) {
	trimmedBasePath := strings.TrimSpace(basePath)
	if len(trimmedBasePath) == 0 {
		return resolver.DefaultBasePath()
	}
	return resolver.homeExpander.Expand(trimmedBasePath), nil
}

func (resolver *Resolver) resolveHomeDirectory() (string, error) {
	if resolver.homeDirectoryProvider != nil {
		return resolver.homeDirectoryProvider()
	}
	return os.UserHomeDir()
}
