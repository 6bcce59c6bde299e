package validation

import "eventsapi/internal/domain"

// EventCreateSchema validates POST /events bodies.
func EventCreateSchema() Schema {
	return NewStructSchema[domain.EventCreate]()
}

// EventUpdateSchema validates PUT and PATCH /events/{id} bodies. At least
// one field must be present and none may be cleared.
func EventUpdateSchema() Schema {
	return NewStructSchema(
		WithCheck(func(u domain.EventUpdate) []string {
			if u.IsEmpty() {
				return []string{"at least one field is required"}
			}
			return nil
		}),
		WithCheck(func(u domain.EventUpdate) []string {
			if u.Date != nil && u.Date.IsZero() {
				return []string{"date must be set"}
			}
			return nil
		}),
	)
}
