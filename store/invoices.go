package store

import "clinicpro-backend/models"

type Invoices struct {
	s *Store
}

func (r *Invoices) GetAll() []models.Invoice {
	return GetAll[models.Invoice](r.s, CollectionInvoices)
}

func (r *Invoices) Get(id string) (models.Invoice, bool) {
	return Get[models.Invoice](r.s, CollectionInvoices, id)
}

func (r *Invoices) Add(inv models.Invoice) (models.Invoice, error) {
	return Add(r.s, CollectionInvoices, inv)
}

func (r *Invoices) Update(inv models.Invoice) (bool, error) {
	return Update(r.s, CollectionInvoices, inv)
}

func (r *Invoices) Delete(id string) (bool, error) {
	return Delete[models.Invoice](r.s, CollectionInvoices, id)
}

func (r *Invoices) GetByClientID(clientID string) []models.Invoice {
	var out []models.Invoice
	for _, inv := range r.GetAll() {
		if inv.ClientID == clientID {
			out = append(out, inv)
		}
	}
	return out
}
