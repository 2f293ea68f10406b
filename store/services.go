package store

import "clinicpro-backend/models"

type Services struct {
	s *Store
}

func (r *Services) GetAll() []models.Service {
	return GetAll[models.Service](r.s, CollectionServices)
}

func (r *Services) Get(id string) (models.Service, bool) {
	return Get[models.Service](r.s, CollectionServices, id)
}

// GetByName resolves a service by its display name, the way appointments
// and invoices reference services in the persisted layout.
func (r *Services) GetByName(name string) (models.Service, bool) {
	for _, svc := range r.GetAll() {
		if svc.Name == name {
			return svc, true
		}
	}
	return models.Service{}, false
}

func (r *Services) Add(svc models.Service) (models.Service, error) {
	return Add(r.s, CollectionServices, svc)
}

func (r *Services) Update(svc models.Service) (bool, error) {
	return Update(r.s, CollectionServices, svc)
}

func (r *Services) Delete(id string) (bool, error) {
	return Delete[models.Service](r.s, CollectionServices, id)
}

// InitializeDefault seeds the catalog iff the collection is empty. The list
// and prices are the clinic's default contract; do not reorder or reprice.
func (r *Services) InitializeDefault() error {
	if len(r.GetAll()) > 0 {
		return nil
	}
	defaults := []models.Service{
		{ID: "1", Name: "وجه كامل", Price: 50000},
		{ID: "2", Name: "شارب", Price: 0, DynamicPricing: true},
		{ID: "3", Name: "ذقن", Price: 0, DynamicPricing: true},
		{ID: "4", Name: "كف اليد", Price: 0, DynamicPricing: true},
		{ID: "5", Name: "ايدين كاملين", Price: 150000},
		{ID: "6", Name: "ساعدين", Price: 80000},
		{ID: "7", Name: "عضدين", Price: 90000},
		{ID: "8", Name: "رجلين كاملين", Price: 250000},
		{ID: "9", Name: "ساقين", Price: 120000},
		{ID: "10", Name: "فخذين", Price: 150000},
		{ID: "11", Name: "ارداف", Price: 50000},
		{ID: "12", Name: "بيكيني", Price: 50000},
		{ID: "13", Name: "ابط", Price: 50000},
		{ID: "14", Name: "ابط + بيكيني", Price: 100000},
		{ID: "15", Name: "بطن", Price: 120000},
		{ID: "16", Name: "خط السرة", Price: 80000},
		{ID: "17", Name: "اسفل الظهر", Price: 0, DynamicPricing: true},
		{ID: "18", Name: "ظهر", Price: 130000},
		{ID: "19", Name: "جسم كامل", Price: 700000},
		{ID: "20", Name: "جسم كامل مع وجه وارداف", Price: 750000},
		{ID: "21", Name: "جسم جزئي", Price: 550000},
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return writeCollection(r.s, CollectionServices, defaults)
}
