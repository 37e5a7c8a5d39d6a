package availability

import "docportal/models"

// ComputeAvailability returns one TreatmentOption per catalogue entry, in
// catalogue order, with each slots list reduced to the slots not taken by any
// booking for that treatment. The date is an opaque equality key; bookings
// must already be restricted to it by the caller (the store query does the
// date filter, not this function). Fully booked treatments come back with an
// empty, never nil, slots list.
func ComputeAvailability(date string, catalog []models.TreatmentOption, bookings []models.Booking) []models.TreatmentOption {
	// Index booked slots by treatment so each catalogue entry is a set lookup
	// instead of a scan over all bookings.
	occupied := make(map[string]map[string]struct{})
	for _, b := range bookings {
		slots, ok := occupied[b.TreatmentName]
		if !ok {
			slots = make(map[string]struct{})
			occupied[b.TreatmentName] = slots
		}
		slots[b.SelectedSlot] = struct{}{}
	}

	result := make([]models.TreatmentOption, 0, len(catalog))
	for _, t := range catalog {
		remaining := make([]string, 0, len(t.Slots))
		for _, slot := range t.Slots {
			if _, taken := occupied[t.Name][slot]; !taken {
				remaining = append(remaining, slot)
			}
		}
		t.Slots = remaining
		result = append(result, t)
	}
	return result
}
