package store

import (
	"encoding/json"
	"reflect"
	"testing"

	"clinicpro-backend/models"
)

func seedTestData(t *testing.T, db *DB) {
	t.Helper()
	if _, err := db.Clients.Add(models.Client{ID: "c1", Name: "Sara Ahmad", PhoneNumber: "0991234567"}); err != nil {
		t.Fatalf("Add client failed: %v", err)
	}
	if _, err := db.Services.Add(models.Service{ID: "s1", Name: "Full Face", Price: 50000}); err != nil {
		t.Fatalf("Add service failed: %v", err)
	}
	if _, err := db.Appointments.Add(models.Appointment{ID: "a1", ClientID: "c1", Date: "2026-03-01", Time: "10:00", Services: []string{"Full Face"}}); err != nil {
		t.Fatalf("Add appointment failed: %v", err)
	}
	if _, err := db.Invoices.Add(models.Invoice{ID: "i1", ClientID: "c1", TotalAmount: 50000, PaymentMethod: models.PaymentCash, AmountPaid: 50000}); err != nil {
		t.Fatalf("Add invoice failed: %v", err)
	}
}

func TestBackupRoundTrip(t *testing.T) {
	db := newTestDB(t)
	seedTestData(t, db)

	blob, err := db.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// Mutate everything, then restore
	if _, err := db.Clients.Delete("c1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := db.Services.Add(models.Service{ID: "s2", Name: "Extra", Price: 1}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if !db.RestoreBackup(blob) {
		t.Fatal("RestoreBackup reported failure")
	}

	clients := db.Clients.GetAll()
	if len(clients) != 1 || clients[0].Name != "Sara Ahmad" {
		t.Fatalf("clients not restored: %+v", clients)
	}
	services := db.Services.GetAll()
	if len(services) != 1 || services[0].ID != "s1" {
		t.Fatalf("services not restored: %+v", services)
	}
	if got := db.Appointments.GetAll(); len(got) != 1 {
		t.Fatalf("appointments not restored: %+v", got)
	}
	if got := db.Invoices.GetAll(); len(got) != 1 {
		t.Fatalf("invoices not restored: %+v", got)
	}
}

func TestBackupTimestampAndVersion(t *testing.T) {
	db := newTestDB(t)

	blob, err := db.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal([]byte(blob), &decoded); err != nil {
		t.Fatalf("blob is not valid JSON: %v", err)
	}
	for _, key := range []string{"appointments", "clients", "services", "invoices", "timestamp", "version"} {
		if _, ok := decoded[key]; !ok {
			t.Fatalf("blob missing key %q", key)
		}
	}
}

func TestRestoreMalformedBlobWritesNothing(t *testing.T) {
	db := newTestDB(t)
	seedTestData(t, db)

	before := db.Clients.GetAll()

	if db.RestoreBackup("{definitely not json") {
		t.Fatal("expected malformed blob to fail")
	}
	if db.RestoreBackup(`{"clients": "not an array"}`) {
		t.Fatal("expected structurally invalid blob to fail")
	}

	after := db.Clients.GetAll()
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("expected clients untouched, before %+v after %+v", before, after)
	}
}

func TestRestoreLeavesAbsentKeysUntouched(t *testing.T) {
	db := newTestDB(t)
	seedTestData(t, db)

	// Unversioned blob carrying only clients, as the original exported
	blob := `{"clients":[{"id":"cX","name":"Replaced","phoneNumber":"099"}],"timestamp":"2026-01-01T00:00:00Z"}`
	if !db.RestoreBackup(blob) {
		t.Fatal("RestoreBackup reported failure")
	}

	clients := db.Clients.GetAll()
	if len(clients) != 1 || clients[0].ID != "cX" {
		t.Fatalf("clients not overwritten: %+v", clients)
	}
	if got := db.Services.GetAll(); len(got) != 1 {
		t.Fatalf("expected services untouched, got %+v", got)
	}
	if got := db.Invoices.GetAll(); len(got) != 1 {
		t.Fatalf("expected invoices untouched, got %+v", got)
	}
}
