package promptvar

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// FilesystemStorage stores templates as JSON files on the filesystem.
// Versioning is supported through separate files per version.
//
// Directory structure:
//
//	<root>/
//	  <template-name>/
//	    v1.json
//	    v2.json
//	    ...
type FilesystemStorage struct {
	mu     sync.RWMutex
	root   string
	closed bool
}

// Filesystem storage error message constants
const (
	ErrMsgInvalidStorageRoot = "invalid storage root directory"
	ErrMsgCreateStorageDir   = "failed to create storage directory"
	ErrMsgReadStorageDir     = "failed to read storage directory"
	ErrMsgReadTemplateFile   = "failed to read template file"
	ErrMsgWriteTemplateFile  = "failed to write template file"
	ErrMsgDecodeTemplateFile = "failed to decode template file"
)

// filesystemVersionPrefix and suffix form per-version file names (v1.json).
const (
	filesystemVersionPrefix = "v"
	filesystemVersionSuffix = ".json"
)

// FilesystemStorageDriver is the driver for creating FilesystemStorage instances.
type FilesystemStorageDriver struct{}

func init() {
	RegisterStorageDriver(StorageDriverNameFilesystem, &FilesystemStorageDriver{})
}

// Open creates a new FilesystemStorage instance.
// The connection string is the root directory path.
func (d *FilesystemStorageDriver) Open(connectionString string) (TemplateStorage, error) {
	return NewFilesystemStorage(connectionString)
}

// NewFilesystemStorage creates a new filesystem-based template storage.
// The root directory will be created if it doesn't exist.
func NewFilesystemStorage(root string) (*FilesystemStorage, error) {
	if root == "" {
		return nil, &StorageError{Message: ErrMsgInvalidStorageRoot}
	}

	if err := os.MkdirAll(root, FilesystemDirPermissions); err != nil {
		return nil, &StorageError{
			Message: ErrMsgCreateStorageDir,
			Name:    root,
			Cause:   err,
		}
	}

	return &FilesystemStorage{
		root: root,
	}, nil
}

// validTemplateName rejects names that would escape the storage root.
func validTemplateName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, "/\\")
}

// templateDir returns the directory holding a template's versions.
func (s *FilesystemStorage) templateDir(name string) string {
	return filepath.Join(s.root, name)
}

// versionFile returns the path of a specific version file.
func (s *FilesystemStorage) versionFile(name string, version int) string {
	file := filesystemVersionPrefix + strconv.Itoa(version) + filesystemVersionSuffix
	return filepath.Join(s.templateDir(name), file)
}

// readVersionFile loads and decodes a single version file.
func (s *FilesystemStorage) readVersionFile(path string) (*StoredTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tmpl StoredTemplate
	if err := json.Unmarshal(data, &tmpl); err != nil {
		return nil, &StorageError{
			Message: ErrMsgDecodeTemplateFile,
			Name:    path,
			Cause:   err,
		}
	}
	return &tmpl, nil
}

// versionNumbers returns the version numbers present for a template,
// newest first. Missing directory yields an empty slice.
func (s *FilesystemStorage) versionNumbers(name string) ([]int, error) {
	entries, err := os.ReadDir(s.templateDir(name))
	if err != nil {
		if os.IsNotExist(err) {
			return []int{}, nil
		}
		return nil, &StorageError{
			Message: ErrMsgReadStorageDir,
			Name:    name,
			Cause:   err,
		}
	}

	var versions []int
	for _, entry := range entries {
		fname := entry.Name()
		if entry.IsDir() ||
			!strings.HasPrefix(fname, filesystemVersionPrefix) ||
			!strings.HasSuffix(fname, filesystemVersionSuffix) {
			continue
		}
		raw := strings.TrimSuffix(strings.TrimPrefix(fname, filesystemVersionPrefix), filesystemVersionSuffix)
		v, convErr := strconv.Atoi(raw)
		if convErr != nil || v < 1 {
			continue
		}
		versions = append(versions, v)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(versions)))
	return versions, nil
}

// Get retrieves the latest version of a template by name.
func (s *FilesystemStorage) Get(ctx context.Context, name string) (*StoredTemplate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStorageClosedError()
	}
	if !validTemplateName(name) {
		return nil, &StorageError{Message: ErrMsgInvalidTemplateName, Name: name}
	}

	versions, err := s.versionNumbers(name)
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return nil, NewStorageTemplateNotFoundError(name)
	}

	tmpl, err := s.readVersionFile(s.versionFile(name, versions[0]))
	if err != nil {
		return nil, wrapFileReadError(name, err)
	}
	return tmpl, nil
}

// GetVersion retrieves a specific version of a template.
func (s *FilesystemStorage) GetVersion(ctx context.Context, name string, version int) (*StoredTemplate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStorageClosedError()
	}
	if !validTemplateName(name) {
		return nil, &StorageError{Message: ErrMsgInvalidTemplateName, Name: name}
	}

	tmpl, err := s.readVersionFile(s.versionFile(name, version))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewStorageVersionNotFoundError(name, version)
		}
		return nil, wrapFileReadError(name, err)
	}
	return tmpl, nil
}

// Save stores a template, creating a new version if one exists.
func (s *FilesystemStorage) Save(ctx context.Context, tmpl *StoredTemplate) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !validTemplateName(tmpl.Name) {
		return &StorageError{Message: ErrMsgInvalidTemplateName, Name: tmpl.Name}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStorageClosedError()
	}

	versions, err := s.versionNumbers(tmpl.Name)
	if err != nil {
		return err
	}

	nextVersion := 1
	if len(versions) > 0 {
		nextVersion = versions[0] + 1
	}

	now := time.Now()
	stored := &StoredTemplate{
		ID:        generateTemplateID(),
		Name:      tmpl.Name,
		Source:    tmpl.Source,
		Defaults:  tmpl.Defaults,
		Version:   nextVersion,
		Metadata:  tmpl.Metadata,
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: tmpl.CreatedBy,
	}

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return &StorageError{
			Message: ErrMsgWriteTemplateFile,
			Name:    tmpl.Name,
			Cause:   err,
		}
	}

	dir := s.templateDir(tmpl.Name)
	if err := os.MkdirAll(dir, FilesystemDirPermissions); err != nil {
		return &StorageError{
			Message: ErrMsgCreateStorageDir,
			Name:    tmpl.Name,
			Cause:   err,
		}
	}

	path := s.versionFile(tmpl.Name, nextVersion)
	if err := os.WriteFile(path, data, FilesystemFilePermissions); err != nil {
		return &StorageError{
			Message: ErrMsgWriteTemplateFile,
			Name:    tmpl.Name,
			Cause:   err,
		}
	}

	tmpl.ID = stored.ID
	tmpl.Version = stored.Version
	tmpl.CreatedAt = stored.CreatedAt
	tmpl.UpdatedAt = stored.UpdatedAt

	return nil
}

// Delete removes all versions of a template by name.
func (s *FilesystemStorage) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStorageClosedError()
	}
	if !validTemplateName(name) {
		return &StorageError{Message: ErrMsgInvalidTemplateName, Name: name}
	}

	dir := s.templateDir(name)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return NewStorageTemplateNotFoundError(name)
	}

	return os.RemoveAll(dir)
}

// DeleteVersion removes a specific version of a template.
func (s *FilesystemStorage) DeleteVersion(ctx context.Context, name string, version int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStorageClosedError()
	}
	if !validTemplateName(name) {
		return &StorageError{Message: ErrMsgInvalidTemplateName, Name: name}
	}

	path := s.versionFile(name, version)
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return NewStorageVersionNotFoundError(name, version)
		}
		return &StorageError{
			Message: ErrMsgWriteTemplateFile,
			Name:    name,
			Version: version,
			Cause:   err,
		}
	}

	// Remove the directory when the last version is gone
	remaining, err := s.versionNumbers(name)
	if err == nil && len(remaining) == 0 {
		_ = os.Remove(s.templateDir(name))
	}

	return nil
}

// List returns templates matching the query.
func (s *FilesystemStorage) List(ctx context.Context, query *TemplateQuery) ([]*StoredTemplate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStorageClosedError()
	}

	if query == nil {
		query = &TemplateQuery{}
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, &StorageError{
			Message: ErrMsgReadStorageDir,
			Name:    s.root,
			Cause:   err,
		}
	}

	var results []*StoredTemplate
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !matchesName(name, query) {
			continue
		}

		versions, err := s.versionNumbers(name)
		if err != nil || len(versions) == 0 {
			continue
		}

		wanted := versions[:1]
		if query.IncludeAllVersions {
			wanted = versions
		}
		for _, v := range wanted {
			tmpl, readErr := s.readVersionFile(s.versionFile(name, v))
			if readErr != nil {
				continue
			}
			if matchesTemplateQuery(tmpl, query) {
				results = append(results, tmpl)
			}
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Name != results[j].Name {
			return results[i].Name < results[j].Name
		}
		return results[i].Version > results[j].Version
	})

	if query.Offset > 0 {
		if query.Offset >= len(results) {
			return []*StoredTemplate{}, nil
		}
		results = results[query.Offset:]
	}
	if query.Limit > 0 && len(results) > query.Limit {
		results = results[:query.Limit]
	}

	return results, nil
}

// Exists checks if a template with the given name exists.
func (s *FilesystemStorage) Exists(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false, NewStorageClosedError()
	}
	if !validTemplateName(name) {
		return false, nil
	}

	versions, err := s.versionNumbers(name)
	if err != nil {
		return false, err
	}
	return len(versions) > 0, nil
}

// ListVersions returns all version numbers for a template, newest first.
func (s *FilesystemStorage) ListVersions(ctx context.Context, name string) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStorageClosedError()
	}
	if !validTemplateName(name) {
		return []int{}, nil
	}

	return s.versionNumbers(name)
}

// Close marks the storage as closed.
func (s *FilesystemStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

// wrapFileReadError keeps StorageError wrapping consistent for read failures.
func wrapFileReadError(name string, err error) error {
	var storageErr *StorageError
	if errors.As(err, &storageErr) {
		return err
	}
	return &StorageError{
		Message: ErrMsgReadTemplateFile,
		Name:    name,
		Cause:   err,
	}
}
