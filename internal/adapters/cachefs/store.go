// Package cachefs persists resolved entities as one JSON file per entity.
package cachefs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/wodl/internal/core/domain"
	"go.trai.ch/wodl/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.CacheStore with the layout <dir>/<entity type>/<id>.json.
type Store struct {
	logger ports.Logger
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now when computing the cache age.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates a Store.
func NewStore(logger ports.Logger, opts ...Option) *Store {
	s := &Store{
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// entry is one persisted file.
type entry struct {
	path    string
	modTime time.Time
}

// Freshness counts the entries of the given types and finds the oldest modification time.
func (s *Store) Freshness(dir string, types []domain.EntityType) (domain.CacheFreshness, error) {
	var f domain.CacheFreshness
	for _, typ := range types {
		entries, err := s.entries(dir, typ)
		if err != nil {
			return domain.CacheFreshness{}, err
		}
		for _, e := range entries {
			if f.Files == 0 || e.modTime.Before(f.Oldest) {
				f.Oldest = e.modTime
			}
			f.Files++
		}
	}

	if f.Files > 0 {
		f.Age = s.now().Sub(f.Oldest)
	}
	return f, nil
}

// Load reads every persisted entry once policy accepts the cache.
// It reports false, without error, when there is nothing to load or the policy declines.
func (s *Store) Load(
	ctx context.Context,
	dir string,
	types []domain.EntityType,
	policy ports.ReusePolicy,
) (domain.CacheSnapshot, bool, error) {
	freshness, err := s.Freshness(dir, types)
	if err != nil {
		return nil, false, err
	}
	if freshness.Empty() {
		s.logger.Info("No file cache found")
		return nil, false, nil
	}

	ok, err := policy.ConfirmReuse(ctx, freshness)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		s.logger.Info("Not using file cache, entities will be fetched again")
		return nil, false, nil
	}

	snapshot := make(domain.CacheSnapshot, len(types))
	for _, typ := range types {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}

		entries, err := s.entries(dir, typ)
		if err != nil {
			return nil, false, err
		}

		loaded := make(map[string]domain.Entity, len(entries))
		for _, e := range entries {
			entity, err := readEntity(e.path)
			if err != nil {
				s.logger.Warn(fmt.Sprintf("skipping cache entry %s: %v", e.path, err))
				continue
			}

			id, ok := entity.ID()
			if !ok {
				s.logger.Warn(fmt.Sprintf("skipping cache entry %s: no id", e.path))
				continue
			}
			loaded[id] = entity
		}
		snapshot[typ] = loaded
	}

	s.logger.Info(fmt.Sprintf("Loaded %d cached entities from %s", snapshot.Len(), dir))
	return snapshot, true, nil
}

// Save replaces the persisted entries of every snapshot type with the snapshot contents.
func (s *Store) Save(ctx context.Context, dir string, snapshot domain.CacheSnapshot) (int, error) {
	types := make([]domain.EntityType, 0, len(snapshot))
	for typ := range snapshot {
		types = append(types, typ)
	}
	slices.Sort(types)

	written := 0
	for _, typ := range types {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		typeDir := filepath.Join(dir, string(typ))
		if err := os.MkdirAll(typeDir, domain.DirPerm); err != nil {
			return written, zerr.With(zerr.Wrap(err, domain.ErrCacheCreateFailed.Error()), "dir", typeDir)
		}
		if _, err := s.clearType(dir, typ); err != nil {
			return written, err
		}

		byID := make(map[string]domain.Entity, len(snapshot[typ]))
		for _, key := range slices.Sorted(maps.Keys(snapshot[typ])) {
			entity := snapshot[typ][key]
			if entity == nil {
				continue
			}
			id, ok := entity.ID()
			if !ok {
				s.logger.Warn(fmt.Sprintf("not caching %s/%s: entity has no id", typ, key))
				continue
			}
			if _, dup := byID[id]; !dup {
				byID[id] = entity
			}
		}

		for _, id := range slices.Sorted(maps.Keys(byID)) {
			if err := validateKey(id); err != nil {
				s.logger.Warn(fmt.Sprintf("not caching %s/%s: %v", typ, id, err))
				continue
			}
			if err := writeEntity(filepath.Join(typeDir, id+domain.CacheFileExt), byID[id]); err != nil {
				return written, zerr.With(err, "entity", string(typ)+"/"+id)
			}
			written++
		}
	}
	return written, nil
}

// Clear removes the persisted entries of the given types.
func (s *Store) Clear(dir string, types []domain.EntityType) (int, error) {
	removed := 0
	for _, typ := range types {
		n, err := s.clearType(dir, typ)
		removed += n
		if err != nil {
			return removed, err
		}
	}
	return removed, nil
}

func (s *Store) clearType(dir string, typ domain.EntityType) (int, error) {
	entries, err := s.entries(dir, typ)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, e := range entries {
		if err := os.Remove(e.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return removed, zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", e.path)
		}
		removed++
	}
	return removed, nil
}

// entries lists the *.json files of one type directory. A missing directory has no entries.
func (s *Store) entries(dir string, typ domain.EntityType) ([]entry, error) {
	typeDir := filepath.Join(dir, string(typ))

	dirEntries, err := os.ReadDir(typeDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "dir", typeDir)
	}

	entries := make([]entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() || filepath.Ext(de.Name()) != domain.CacheFileExt {
			continue
		}
		info, err := de.Info()
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", filepath.Join(typeDir, de.Name()))
		}
		entries = append(entries, entry{
			path:    filepath.Join(typeDir, de.Name()),
			modTime: info.ModTime(),
		})
	}
	return entries, nil
}

func readEntity(path string) (domain.Entity, error) {
	//nolint:gosec // Path is built from the cache directory and a listed file name
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheReadFailed.Error())
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var entity domain.Entity
	if err := dec.Decode(&entity); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheUnmarshalFailed.Error())
	}
	if entity == nil {
		return nil, domain.ErrCacheUnmarshalFailed
	}
	return entity, nil
}

func writeEntity(path string, entity domain.Entity) error {
	data, err := json.MarshalIndent(entity, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheMarshalFailed.Error())
	}
	if err := atomicWriteFile(path, append(data, '\n')); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	return nil
}

// atomicWriteFile writes data to a temp file in the target directory and renames it into place.
func atomicWriteFile(path string, data []byte) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".entity-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// validateKey rejects ids that would escape the type directory or cannot name a file.
func validateKey(id string) error {
	switch {
	case id == "", id == ".", id == "..":
	case strings.ContainsAny(id, `/\`+"\x00"):
	default:
		return nil
	}
	return zerr.With(domain.ErrInvalidCacheKey, "id", id)
}
