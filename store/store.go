package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Collection names, fixed to the persisted layout.
const (
	CollectionAppointments = "appointments"
	CollectionClients      = "clients"
	CollectionServices     = "services"
	CollectionInvoices     = "invoices"
)

// Entity is anything addressable by its string id. Ids are generated by
// callers before the first write; the store never assigns one.
type Entity interface {
	EntityID() string
}

// Store persists one JSON array per collection under a data directory.
// Every mutation re-serialises and rewrites the whole array. A single mutex
// serialises in-process callers; across processes the semantics stay
// last-full-write-wins with no merge or conflict detection.
type Store struct {
	mu  sync.Mutex
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// readCollection returns the persisted array. A missing or unparseable file
// is a valid empty collection, never an error.
func readCollection[T any](s *Store, collection string) []T {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		return nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	return items
}

func writeCollection[T any](s *Store, collection string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	if err := os.WriteFile(s.path(collection), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", collection, err)
	}
	return nil
}

// GetAll returns every entity in the collection in storage order.
func GetAll[T Entity](s *Store, collection string) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readCollection[T](s, collection)
}

// Get scans for an entity by id. A miss is (zero, false), not an error.
func Get[T Entity](s *Store, collection, id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range readCollection[T](s, collection) {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Add appends the item and persists the whole collection. Ids are not
// checked for collision; the caller owns uniqueness.
func Add[T Entity](s *Store, collection string, item T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := readCollection[T](s, collection)
	items = append(items, item)
	return item, writeCollection(s, collection, items)
}

// Update replaces the entity with the same id wholesale. When the id is not
// present it returns (false, nil) and writes nothing; there is no upsert.
func Update[T Entity](s *Store, collection string, item T) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := readCollection[T](s, collection)
	for i := range items {
		if items[i].EntityID() == item.EntityID() {
			items[i] = item
			return true, writeCollection(s, collection, items)
		}
	}
	return false, nil
}

// Delete removes the entity if present and reports whether it did.
func Delete[T Entity](s *Store, collection, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := readCollection[T](s, collection)
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if item.EntityID() != id {
			filtered = append(filtered, item)
		}
	}
	if len(filtered) == len(items) {
		return false, nil
	}
	return true, writeCollection(s, collection, filtered)
}
