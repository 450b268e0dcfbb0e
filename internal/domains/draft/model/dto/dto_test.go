package dto

import (
	"kiraya/internal/domains/draft/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestMergeDraftRequestApplyTo(t *testing.T) {
	t.Run("absent fields leave draft untouched", func(t *testing.T) {
		draft := model.Draft{
			City:      &model.CityRef{ID: "city-1", Name: "Jakarta"},
			StartDate: "2026-09-01",
			EndDate:   "2026-09-03",
		}

		req := MergeDraftRequest{
			SelectedCar: &CarSnapshotPayload{ID: "car-1", Name: "Avanza", PricePerDay: 350000},
		}
		req.ApplyTo(&draft, "")

		assert.Equal(t, "city-1", draft.City.ID)
		assert.Equal(t, "2026-09-01", draft.StartDate)
		assert.Equal(t, "2026-09-03", draft.EndDate)
		assert.Equal(t, "Avanza", draft.SelectedCar.Name)
	})

	t.Run("last write wins", func(t *testing.T) {
		draft := model.Draft{
			City:      &model.CityRef{ID: "city-1", Name: "Jakarta"},
			StartDate: "2026-09-01",
		}

		req := MergeDraftRequest{
			City:      &CityRefPayload{ID: "city-2", Name: "Bali", Note: "airport pickup"},
			StartDate: strPtr("2026-09-10"),
		}
		req.ApplyTo(&draft, "")

		assert.Equal(t, "city-2", draft.City.ID)
		assert.Equal(t, "Bali", draft.City.Name)
		assert.Equal(t, "airport pickup", draft.City.Note)
		assert.Equal(t, "2026-09-10", draft.StartDate)
	})

	t.Run("renter info replaced wholesale", func(t *testing.T) {
		draft := model.Draft{
			RenterInfo: &model.RenterInfo{
				FirstName: "Budi",
				LastName:  "Santoso",
				Phone:     "0811111111",
				Email:     "budi@example.com",
			},
		}

		req := MergeDraftRequest{
			RenterInfo: &RenterInfoPayload{
				FirstName: "Siti",
				LastName:  "Rahma",
				Phone:     "0822222222",
			},
		}
		req.ApplyTo(&draft, "https://cdn.example.com/licenses/abc.jpg")

		assert.Equal(t, "Siti", draft.RenterInfo.FirstName)
		assert.Empty(t, draft.RenterInfo.Email)
		assert.Equal(t, "https://cdn.example.com/licenses/abc.jpg", draft.RenterInfo.LicensePhotoURL)
	})

	t.Run("re-merge without a new photo keeps the stored license URL", func(t *testing.T) {
		draft := model.Draft{
			RenterInfo: &model.RenterInfo{
				FirstName:       "Budi",
				LicensePhotoURL: "https://cdn.example.com/licenses/abc.jpg",
			},
		}

		req := MergeDraftRequest{
			RenterInfo: &RenterInfoPayload{
				FirstName: "Budi",
				LastName:  "Santoso",
			},
		}
		req.ApplyTo(&draft, "")

		assert.Equal(t, "Santoso", draft.RenterInfo.LastName)
		assert.Equal(t, "https://cdn.example.com/licenses/abc.jpg", draft.RenterInfo.LicensePhotoURL)
	})

	t.Run("new photo replaces the stored license URL", func(t *testing.T) {
		draft := model.Draft{
			RenterInfo: &model.RenterInfo{
				LicensePhotoURL: "https://cdn.example.com/licenses/abc.jpg",
			},
		}

		req := MergeDraftRequest{
			RenterInfo: &RenterInfoPayload{FirstName: "Budi"},
		}
		req.ApplyTo(&draft, "https://cdn.example.com/licenses/def.jpg")

		assert.Equal(t, "https://cdn.example.com/licenses/def.jpg", draft.RenterInfo.LicensePhotoURL)
	})
}

func TestDraftResponseFromModel(t *testing.T) {
	t.Run("incomplete draft lists missing fields", func(t *testing.T) {
		var res DraftResponse
		res.FromModel(model.Draft{StartDate: "2026-09-01"})

		assert.False(t, res.Complete)
		assert.Equal(t, []string{"city", "end_date", "selected_car"}, res.Missing)
	})

	t.Run("complete draft", func(t *testing.T) {
		var res DraftResponse
		res.FromModel(model.Draft{
			City:        &model.CityRef{ID: "city-1", Name: "Jakarta"},
			StartDate:   "2026-09-01",
			EndDate:     "2026-09-03",
			SelectedCar: &model.CarSnapshot{ID: "car-1", Name: "Avanza", PricePerDay: 350000},
		})

		assert.True(t, res.Complete)
		assert.Empty(t, res.Missing)
	})
}
