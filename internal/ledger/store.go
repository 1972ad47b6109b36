package ledger

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/semaphore"

	"github.com/jask/pyrite/internal/logging"
)

// Store is durable backing for a ledger. Save always receives the full
// record set and replaces whatever was stored before.
type Store interface {
	Load(ctx context.Context) ([]Purchase, error)
	Save(ctx context.Context, records []Purchase) error
}

// FileStore keeps the ledger in a CSV file.
type FileStore struct {
	Path string
}

// NewFileStore returns a store for the CSV file at path.
func NewFileStore(path string) *FileStore { return &FileStore{Path: path} }

// Load decodes the file. A missing file is an empty ledger.
func (s *FileStore) Load(ctx context.Context) ([]Purchase, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open purchases: %w", err)
	}
	defer f.Close()
	records, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return records, nil
}

// Save rewrites the file through a temp file and rename so a failed write
// never leaves a truncated ledger behind.
func (s *FileStore) Save(ctx context.Context, records []Purchase) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("mkdir purchases dir: %w", err)
	}
	tmp := s.Path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create purchases temp file: %w", err)
	}
	w := bufio.NewWriter(f)
	if err := Encode(w, records); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("encode purchases: %w", err)
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("write purchases: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close purchases temp file: %w", err)
	}
	return os.Rename(tmp, s.Path)
}

type serialized struct {
	store Store
	sem   *semaphore.Weighted
}

// Serialized wraps store so at most one Load or Save runs at a time. Saves
// issued from background commands queue behind the one in flight instead of
// interleaving their writes.
func Serialized(store Store) Store {
	return &serialized{store: store, sem: semaphore.NewWeighted(1)}
}

func (s *serialized) Load(ctx context.Context) ([]Purchase, error) {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer s.sem.Release(1)
	return s.store.Load(ctx)
}

func (s *serialized) Save(ctx context.Context, records []Purchase) error {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer s.sem.Release(1)
	return s.store.Save(ctx, records)
}

type mirror struct {
	primary     Store
	secondaries []Store
}

// Mirror loads from primary and saves to primary and then every secondary.
// The primary alone decides whether a save succeeded; secondary failures are
// logged and leave the secondary stale until the next save.
func Mirror(primary Store, secondaries ...Store) Store {
	if len(secondaries) == 0 {
		return primary
	}
	return &mirror{primary: primary, secondaries: secondaries}
}

func (m *mirror) Load(ctx context.Context) ([]Purchase, error) { return m.primary.Load(ctx) }

func (m *mirror) Save(ctx context.Context, records []Purchase) error {
	if err := m.primary.Save(ctx, records); err != nil {
		return err
	}
	for i, s := range m.secondaries {
		if err := s.Save(ctx, records); err != nil {
			lg := logging.Component("ledger")
			lg.Warn().Err(err).Int("mirror", i).Int("purchases", len(records)).Msg("mirror save failed")
		}
	}
	return nil
}
