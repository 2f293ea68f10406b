package store

import (
	"encoding/json"
	"time"
)

// backupVersion is written into new blobs. Restore ignores it so blobs
// exported before the field existed keep working.
const backupVersion = 1

type backupBlob struct {
	Version      int               `json:"version,omitempty"`
	Appointments []json.RawMessage `json:"appointments"`
	Clients      []json.RawMessage `json:"clients"`
	Services     []json.RawMessage `json:"services"`
	Invoices     []json.RawMessage `json:"invoices"`
	Timestamp    string            `json:"timestamp"`
}

// CreateBackup serialises all four collections plus a UTC timestamp into a
// single blob. Collections are captured sequentially, not under one lock
// spanning the whole snapshot, so a write racing the backup lands in some
// collections and not others.
func (db *DB) CreateBackup() (string, error) {
	blob := backupBlob{
		Version:      backupVersion,
		Appointments: rawCollection(db.store, CollectionAppointments),
		Clients:      rawCollection(db.store, CollectionClients),
		Services:     rawCollection(db.store, CollectionServices),
		Invoices:     rawCollection(db.store, CollectionInvoices),
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
	data, err := json.Marshal(blob)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// RestoreBackup overwrites each collection whose key is present in the
// blob; absent keys are left untouched, not cleared. A blob that fails to
// parse as the expected structure writes nothing and reports false.
func (db *DB) RestoreBackup(data string) bool {
	var blob backupBlob
	if err := json.Unmarshal([]byte(data), &blob); err != nil {
		return false
	}
	ok := true
	for _, c := range []struct {
		name  string
		items []json.RawMessage
	}{
		{CollectionAppointments, blob.Appointments},
		{CollectionClients, blob.Clients},
		{CollectionServices, blob.Services},
		{CollectionInvoices, blob.Invoices},
	} {
		if c.items == nil {
			continue
		}
		if err := writeRaw(db.store, c.name, c.items); err != nil {
			ok = false
		}
	}
	return ok
}

func rawCollection(s *Store, collection string) []json.RawMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := readCollection[json.RawMessage](s, collection)
	if items == nil {
		items = []json.RawMessage{}
	}
	return items
}

func writeRaw(s *Store, collection string, items []json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeCollection(s, collection, items)
}
