package store

import (
	"strings"

	"clinicpro-backend/models"
)

type Clients struct {
	s *Store
}

func (r *Clients) GetAll() []models.Client {
	return GetAll[models.Client](r.s, CollectionClients)
}

func (r *Clients) Get(id string) (models.Client, bool) {
	return Get[models.Client](r.s, CollectionClients, id)
}

func (r *Clients) Add(c models.Client) (models.Client, error) {
	return Add(r.s, CollectionClients, c)
}

func (r *Clients) Update(c models.Client) (bool, error) {
	return Update(r.s, CollectionClients, c)
}

func (r *Clients) Delete(id string) (bool, error) {
	return Delete[models.Client](r.s, CollectionClients, id)
}

// Search matches case-insensitively on name or email, and on the raw phone
// string. Any single match qualifies.
func (r *Clients) Search(query string) []models.Client {
	lower := strings.ToLower(query)
	var out []models.Client
	for _, c := range r.GetAll() {
		if strings.Contains(strings.ToLower(c.Name), lower) ||
			strings.Contains(c.PhoneNumber, query) ||
			(c.Email != "" && strings.Contains(strings.ToLower(c.Email), lower)) {
			out = append(out, c)
		}
	}
	return out
}
