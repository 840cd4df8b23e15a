package verbclass

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Store holds the current verb-class index and supports atomic
// hot-swapping when the data directory changes. Readers always see a
// complete index; a reload builds a new index off to the side and
// swaps the pointer.
type Store struct {
	dir     string
	current atomic.Pointer[Index]

	// OnSwap, if set, runs after each successful reload. Used to
	// flush lookup caches layered above the store.
	OnSwap func(*Index)
}

// NewStore creates a store backed by the given directory. An empty dir
// serves the built-in inventory and never reloads.
func NewStore(dir string) (*Store, error) {
	s := &Store{dir: dir}
	if dir == "" {
		s.current.Store(Builtin())
		return s, nil
	}
	idx, err := LoadDirectory(dir)
	if err != nil {
		return nil, err
	}
	s.current.Store(idx)
	return s, nil
}

// Index returns the current index snapshot
func (s *Store) Index() *Index {
	return s.current.Load()
}

// Lookup implements Analyzer against the current snapshot
func (s *Store) Lookup(lemma string) (*Analysis, bool) {
	return s.current.Load().Lookup(lemma)
}

// Reload rebuilds the index from disk and swaps it in. A failed load
// leaves the previous index serving.
func (s *Store) Reload() error {
	if s.dir == "" {
		return nil
	}
	idx, err := LoadDirectory(s.dir)
	if err != nil {
		return fmt.Errorf("reload verb classes: %w", err)
	}
	s.current.Store(idx)
	if s.OnSwap != nil {
		s.OnSwap(idx)
	}
	return nil
}

// Watch reloads the index whenever a YAML file in the data directory
// changes. Blocks until ctx is cancelled. Events are debounced so an
// editor's write-then-rename sequence triggers one reload.
func (s *Store) Watch(ctx context.Context) error {
	if s.dir == "" {
		<-ctx.Done()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch verb classes: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(s.dir); err != nil {
		return fmt.Errorf("watch %s: %w", s.dir, err)
	}

	var debounce *time.Timer
	reload := func() {
		if err := s.Reload(); err != nil {
			fmt.Fprintf(os.Stderr, "verb class reload failed: %v\n", err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			ext := filepath.Ext(event.Name)
			if ext != ".yaml" && ext != ".yml" {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(200*time.Millisecond, reload)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "verb class watcher: %v\n", err)
		}
	}
}
