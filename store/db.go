package store

// DB bundles the typed repositories over one file store. Controllers and
// schedulers depend on this instead of reaching into files directly.
type DB struct {
	store *Store

	Appointments *Appointments
	Clients      *Clients
	Services     *Services
	Invoices     *Invoices
}

func Open(dir string) (*DB, error) {
	s, err := New(dir)
	if err != nil {
		return nil, err
	}
	return &DB{
		store:        s,
		Appointments: &Appointments{s: s},
		Clients:      &Clients{s: s},
		Services:     &Services{s: s},
		Invoices:     &Invoices{s: s},
	}, nil
}
