package store

import (
	"testing"

	"clinicpro-backend/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return db
}

func TestInitializeDefaultSeedsOnceOnly(t *testing.T) {
	db := newTestDB(t)

	if err := db.Services.InitializeDefault(); err != nil {
		t.Fatalf("InitializeDefault failed: %v", err)
	}
	first := db.Services.GetAll()
	if len(first) != 21 {
		t.Fatalf("expected 21 seeded services, got %d", len(first))
	}

	dynamic := 0
	for _, svc := range first {
		if svc.DynamicPricing {
			dynamic++
			if svc.Price != 0 {
				t.Fatalf("dynamic service %q has nonzero price %v", svc.Name, svc.Price)
			}
		}
	}
	if dynamic != 4 {
		t.Fatalf("expected 4 dynamic-priced services, got %d", dynamic)
	}

	if first[0].Name != "وجه كامل" || first[0].Price != 50000 {
		t.Fatalf("unexpected first seed entry: %+v", first[0])
	}
	if first[18].Name != "جسم كامل" || first[18].Price != 700000 {
		t.Fatalf("unexpected seed entry 19: %+v", first[18])
	}

	// Second call must be a no-op
	if err := db.Services.InitializeDefault(); err != nil {
		t.Fatalf("second InitializeDefault failed: %v", err)
	}
	if got := db.Services.GetAll(); len(got) != 21 {
		t.Fatalf("expected catalog unchanged after reseed, got %d services", len(got))
	}
}

func TestInitializeDefaultSkipsNonEmptyCatalog(t *testing.T) {
	db := newTestDB(t)

	if _, err := db.Services.Add(models.Service{ID: "custom", Name: "Custom", Price: 100}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := db.Services.InitializeDefault(); err != nil {
		t.Fatalf("InitializeDefault failed: %v", err)
	}
	if got := db.Services.GetAll(); len(got) != 1 {
		t.Fatalf("expected seeding to skip non-empty catalog, got %d services", len(got))
	}
}

func TestClientSearch(t *testing.T) {
	db := newTestDB(t)

	if _, err := db.Clients.Add(models.Client{ID: "c1", Name: "Sara Ahmad", PhoneNumber: "0991234567"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := db.Clients.Add(models.Client{ID: "c2", Name: "Lina", PhoneNumber: "0930000000", Email: "Lina@Example.com"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if got := db.Clients.Search("sara"); len(got) != 1 || got[0].ID != "c1" {
		t.Fatalf("name search: got %+v", got)
	}
	if got := db.Clients.Search("0991"); len(got) != 1 || got[0].ID != "c1" {
		t.Fatalf("phone search: got %+v", got)
	}
	if got := db.Clients.Search("lina@example"); len(got) != 1 || got[0].ID != "c2" {
		t.Fatalf("email search: got %+v", got)
	}
	if got := db.Clients.Search("xyz"); len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}
}

func TestAppointmentFilters(t *testing.T) {
	db := newTestDB(t)

	appts := []models.Appointment{
		{ID: "a1", ClientID: "c1", Date: "2026-03-01", Time: "10:00", Services: []string{"وجه كامل"}},
		{ID: "a2", ClientID: "c2", Date: "2026-03-01", Time: "11:00", Services: []string{"ذقن"}},
		{ID: "a3", ClientID: "c1", Date: "2026-03-02", Time: "10:00", Services: []string{"ظهر"}},
	}
	for _, a := range appts {
		if _, err := db.Appointments.Add(a); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	if got := db.Appointments.GetByDate("2026-03-01"); len(got) != 2 {
		t.Fatalf("expected 2 appointments on 2026-03-01, got %d", len(got))
	}
	if got := db.Appointments.GetByClientID("c1"); len(got) != 2 {
		t.Fatalf("expected 2 appointments for c1, got %d", len(got))
	}
	if got := db.Appointments.GetByDate("2026-04-01"); len(got) != 0 {
		t.Fatalf("expected no appointments, got %d", len(got))
	}
}

func TestInvoicesByClient(t *testing.T) {
	db := newTestDB(t)

	if _, err := db.Invoices.Add(models.Invoice{ID: "i1", ClientID: "c1", TotalAmount: 50000}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := db.Invoices.Add(models.Invoice{ID: "i2", ClientID: "c2", TotalAmount: 80000}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	got := db.Invoices.GetByClientID("c1")
	if len(got) != 1 || got[0].ID != "i1" {
		t.Fatalf("expected invoice i1 for c1, got %+v", got)
	}
}

func TestServiceGetByName(t *testing.T) {
	db := newTestDB(t)

	if _, err := db.Services.Add(models.Service{ID: "s1", Name: "Full Face", Price: 50000}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if _, ok := db.Services.GetByName("Full Face"); !ok {
		t.Fatal("expected lookup by name to succeed")
	}
	if _, ok := db.Services.GetByName("Missing"); ok {
		t.Fatal("expected miss for unknown name")
	}
}
