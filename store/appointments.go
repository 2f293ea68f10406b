package store

import "clinicpro-backend/models"

type Appointments struct {
	s *Store
}

func (r *Appointments) GetAll() []models.Appointment {
	return GetAll[models.Appointment](r.s, CollectionAppointments)
}

func (r *Appointments) Get(id string) (models.Appointment, bool) {
	return Get[models.Appointment](r.s, CollectionAppointments, id)
}

func (r *Appointments) Add(a models.Appointment) (models.Appointment, error) {
	return Add(r.s, CollectionAppointments, a)
}

func (r *Appointments) Update(a models.Appointment) (bool, error) {
	return Update(r.s, CollectionAppointments, a)
}

func (r *Appointments) Delete(id string) (bool, error) {
	return Delete[models.Appointment](r.s, CollectionAppointments, id)
}

func (r *Appointments) GetByClientID(clientID string) []models.Appointment {
	var out []models.Appointment
	for _, a := range r.GetAll() {
		if a.ClientID == clientID {
			out = append(out, a)
		}
	}
	return out
}

// GetByDate filters on the exact yyyy-MM-dd string.
func (r *Appointments) GetByDate(date string) []models.Appointment {
	var out []models.Appointment
	for _, a := range r.GetAll() {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out
}
