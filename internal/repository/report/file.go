package report

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/oshokin/baggage-desk/internal/config"
	domain "github.com/oshokin/baggage-desk/internal/domain/baggage"
	"github.com/oshokin/baggage-desk/internal/logger"
	"github.com/oshokin/baggage-desk/internal/wire"
)

// Repository defines persistence operations for registry reports.
type Repository interface {
	Load(ctx context.Context) (*domain.Snapshot, error)
	Save(ctx context.Context, snapshot *domain.Snapshot) error
	// Path names the report location for logs and operator output.
	Path() string
}

// FileRepository keeps a registry report in a JSON file.
type FileRepository struct {
	// path is the filesystem location of the report.
	path string
	// mu protects concurrent access to the report file.
	mu sync.Mutex
}

var (
	// ErrNotFound is returned when the report file does not exist yet.
	ErrNotFound = errors.New("report not found")
	// errNilSnapshot is returned when saving a nil snapshot.
	errNilSnapshot = errors.New("snapshot is nil")
)

// NewFileRepository creates a repository that reads and writes JSON at path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Path returns the report location.
func (r *FileRepository) Path() string {
	return r.path
}

// Load reads a report from disk.
func (r *FileRepository) Load(_ context.Context) (*domain.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read report file: %w", err)
	}

	msg, err := wire.UnmarshalJSON(contents)
	if err != nil {
		return nil, fmt.Errorf("decode report file: %w", err)
	}

	snapshot := new(domain.Snapshot)
	if err = wire.Decode(msg, snapshot); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}

	return snapshot, nil
}

// Save writes the snapshot to disk, replacing any previous report.
func (r *FileRepository) Save(_ context.Context, snapshot *domain.Snapshot) error {
	if snapshot == nil {
		return errNilSnapshot
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	msg, err := wire.Encode(snapshot)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	data, err := wire.MarshalIndent(msg)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write report file: %w", err)
	}

	return nil
}

// Write saves snapshot to repo and logs where the report went.
func Write(ctx context.Context, repo Repository, snapshot *domain.Snapshot) error {
	if err := repo.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("save report to %s: %w", repo.Path(), err)
	}

	logger.InfoKV(ctx, "Registry report written", "report_file", repo.Path())

	return nil
}
