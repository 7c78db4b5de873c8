package client

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"

	"k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/yaml"

	"github.com/giantswarm/dbterra/internal/jobs"
	"github.com/giantswarm/dbterra/pkg/logging"
)

var jobsResource = schema.GroupResource{Group: "cloud.getdbt.com", Resource: "jobs"}

// FilesystemClient is a JobStore that keeps job definitions as YAML files.
//
// It stands in for dbt Cloud during offline runs and tests. Jobs of all
// projects share one directory, as they share one id space in dbt Cloud:
//   - {basePath}/jobs/{id}.yaml
type FilesystemClient struct {
	basePath string
	mu       sync.Mutex
}

// NewFilesystemClient creates a filesystem store rooted at basePath.
func NewFilesystemClient(basePath string) *FilesystemClient {
	if basePath == "" {
		basePath = "."
	}
	return &FilesystemClient{basePath: basePath}
}

// List returns the jobs of projectID ordered by id.
func (f *FilesystemClient) List(ctx context.Context, projectID int64) ([]jobs.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	all, err := f.readAll()
	if err != nil {
		return nil, err
	}

	result := []jobs.Job{}
	for _, job := range all {
		if job.ProjectID == projectID {
			result = append(result, job)
		}
	}
	return result, nil
}

// Create stores job under the next free id.
func (f *FilesystemClient) Create(ctx context.Context, job jobs.Job) (jobs.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if id, ok := job.Identifier(); ok {
		if _, err := os.Stat(f.jobPath(id)); err == nil {
			return jobs.Job{}, errors.NewAlreadyExists(jobsResource, strconv.FormatInt(id, 10))
		}
	}

	all, err := f.readAll()
	if err != nil {
		return jobs.Job{}, err
	}
	// Ids are taken from both the stored jobs and the file names so that a
	// file is never overwritten by a new job.
	next, err := f.maxFileID()
	if err != nil {
		return jobs.Job{}, err
	}
	next++
	for _, existing := range all {
		if id, _ := existing.Identifier(); id >= next {
			next = id + 1
		}
	}

	created := job.Clone()
	created.ID = &next
	if err := f.write(created); err != nil {
		return jobs.Job{}, err
	}
	logging.Debug("FilesystemClient", "Created job %q with id %d", created.Name, next)
	return created, nil
}

// Update replaces the stored job with the same id.
func (f *FilesystemClient) Update(ctx context.Context, job jobs.Job) (jobs.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id, ok := job.Identifier()
	if !ok {
		return jobs.Job{}, errMissingID(job)
	}
	if _, err := os.Stat(f.jobPath(id)); os.IsNotExist(err) {
		return jobs.Job{}, errors.NewNotFound(jobsResource, strconv.FormatInt(id, 10))
	}

	updated := job.Clone()
	if err := f.write(updated); err != nil {
		return jobs.Job{}, err
	}
	return updated, nil
}

func (f *FilesystemClient) readAll() ([]jobs.Job, error) {
	dirPath := f.jobsDir()

	// A missing directory is an empty store.
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read directory %s: %w", dirPath, err)
	}

	var all []jobs.Job
	for _, entry := range entries {
		if entry.IsDir() || !isYAMLFile(entry.Name()) {
			continue
		}

		filePath := filepath.Join(dirPath, entry.Name())
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read job file %s: %w", filePath, err)
		}

		var job jobs.Job
		if err := yaml.Unmarshal(data, &job); err != nil {
			return nil, fmt.Errorf("failed to parse job file %s: %w", filePath, err)
		}
		if job.ID == nil {
			if id, err := strconv.ParseInt(getNameFromFileName(entry.Name()), 10, 64); err == nil {
				job.ID = &id
			}
		}
		all = append(all, job)
	}

	sort.Slice(all, func(i, j int) bool {
		a, _ := all[i].Identifier()
		b, _ := all[j].Identifier()
		return a < b
	})
	return all, nil
}

// maxFileID returns the largest numeric job file name, or 0.
func (f *FilesystemClient) maxFileID() (int64, error) {
	entries, err := os.ReadDir(f.jobsDir())
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read directory %s: %w", f.jobsDir(), err)
	}

	var highest int64
	for _, entry := range entries {
		if entry.IsDir() || !isYAMLFile(entry.Name()) {
			continue
		}
		if id, err := strconv.ParseInt(getNameFromFileName(entry.Name()), 10, 64); err == nil && id > highest {
			highest = id
		}
	}
	return highest, nil
}

func (f *FilesystemClient) write(job jobs.Job) error {
	dirPath := f.jobsDir()
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dirPath, err)
	}

	data, err := yaml.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job %q: %w", job.Name, err)
	}

	id, _ := job.Identifier()
	filePath := f.jobPath(id)
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write job file %s: %w", filePath, err)
	}
	return nil
}

func (f *FilesystemClient) jobsDir() string {
	return filepath.Join(f.basePath, "jobs")
}

func (f *FilesystemClient) jobPath(id int64) string {
	return filepath.Join(f.jobsDir(), strconv.FormatInt(id, 10)+".yaml")
}

func isYAMLFile(filename string) bool {
	ext := filepath.Ext(filename)
	return ext == ".yaml" || ext == ".yml"
}

func getNameFromFileName(filename string) string {
	ext := filepath.Ext(filename)
	return filename[:len(filename)-len(ext)]
}
