package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDraftMissingFields(t *testing.T) {
	tests := []struct {
		name    string
		draft   Draft
		missing []string
	}{
		{
			name:    "empty draft",
			draft:   Draft{},
			missing: []string{"city", "start_date", "end_date", "selected_car"},
		},
		{
			name: "dates only",
			draft: Draft{
				StartDate: "2026-09-01",
				EndDate:   "2026-09-03",
			},
			missing: []string{"city", "selected_car"},
		},
		{
			name: "complete without renter info",
			draft: Draft{
				City:        &CityRef{ID: "city-1", Name: "Jakarta"},
				StartDate:   "2026-09-01",
				EndDate:     "2026-09-03",
				SelectedCar: &CarSnapshot{ID: "car-1", Name: "Avanza", PricePerDay: 350000},
			},
			missing: []string{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.missing, test.draft.MissingFields())
			assert.Equal(t, len(test.missing) == 0, test.draft.IsComplete())
		})
	}
}
