package availability_test

import (
	"testing"

	"docportal/models"
	"docportal/services/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeAvailability(t *testing.T) {
	catalog := []models.TreatmentOption{
		{Name: "Cleaning", Slots: []string{"9am", "10am", "11am"}},
		{Name: "Whitening", Slots: []string{"9am", "10am"}},
	}

	t.Run("removes booked slots for the matching treatment", func(t *testing.T) {
		bookings := []models.Booking{
			{TreatmentName: "Cleaning", Date: "2024-01-01", SelectedSlot: "10am"},
		}

		got := availability.ComputeAvailability("2024-01-01", catalog, bookings)

		require.Len(t, got, 2)
		assert.Equal(t, "Cleaning", got[0].Name)
		assert.Equal(t, []string{"9am", "11am"}, got[0].Slots)
		// Other treatments keep their full slot list.
		assert.Equal(t, []string{"9am", "10am"}, got[1].Slots)
	})

	t.Run("returns one entry per catalogue entry in catalogue order", func(t *testing.T) {
		got := availability.ComputeAvailability("2024-01-01", catalog, nil)

		require.Len(t, got, 2)
		assert.Equal(t, "Cleaning", got[0].Name)
		assert.Equal(t, "Whitening", got[1].Name)
	})

	t.Run("fully booked treatment yields empty, not nil, slots", func(t *testing.T) {
		bookings := []models.Booking{
			{TreatmentName: "Whitening", Date: "2024-01-01", SelectedSlot: "9am"},
			{TreatmentName: "Whitening", Date: "2024-01-01", SelectedSlot: "10am"},
		}

		got := availability.ComputeAvailability("2024-01-01", catalog, bookings)

		require.Len(t, got, 2)
		assert.NotNil(t, got[1].Slots)
		assert.Empty(t, got[1].Slots)
	})

	t.Run("never returns a slot held by a booking for the same treatment", func(t *testing.T) {
		bookings := []models.Booking{
			{TreatmentName: "Cleaning", Date: "2024-01-01", SelectedSlot: "9am"},
			{TreatmentName: "Cleaning", Date: "2024-01-01", SelectedSlot: "11am"},
			{TreatmentName: "Whitening", Date: "2024-01-01", SelectedSlot: "10am"},
		}

		got := availability.ComputeAvailability("2024-01-01", catalog, bookings)

		taken := make(map[string]map[string]bool)
		for _, b := range bookings {
			if taken[b.TreatmentName] == nil {
				taken[b.TreatmentName] = make(map[string]bool)
			}
			taken[b.TreatmentName][b.SelectedSlot] = true
		}
		for _, opt := range got {
			for _, slot := range opt.Slots {
				assert.False(t, taken[opt.Name][slot],
					"slot %s of %s is booked but was returned as available", slot, opt.Name)
			}
		}
	})

	t.Run("empty catalogue yields empty result", func(t *testing.T) {
		got := availability.ComputeAvailability("2024-01-01", nil, nil)
		assert.Empty(t, got)
	})

	t.Run("does not mutate the catalogue slot lists", func(t *testing.T) {
		bookings := []models.Booking{
			{TreatmentName: "Cleaning", Date: "2024-01-01", SelectedSlot: "9am"},
		}

		availability.ComputeAvailability("2024-01-01", catalog, bookings)

		assert.Equal(t, []string{"9am", "10am", "11am"}, catalog[0].Slots)
	})
}
