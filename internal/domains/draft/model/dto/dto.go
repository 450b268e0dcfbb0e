package dto

import (
	"kiraya/internal/domains/draft/model"
)

type CityRefPayload struct {
	ID   string `json:"id"   validate:"required"`
	Name string `json:"name" validate:"required,max=100"`
	Note string `json:"note" validate:"omitempty,max=255"`
}

type CarSnapshotPayload struct {
	ID          string   `json:"id"            validate:"required"`
	Name        string   `json:"name"          validate:"required,max=100"`
	Category    string   `json:"category"      validate:"omitempty,max=50"`
	Seats       int      `json:"seats"         validate:"omitempty,min=1,max=20"`
	PricePerDay int      `json:"price_per_day" validate:"required,min=0"`
	Image       string   `json:"image"         validate:"omitempty,url"`
	Features    []string `json:"features"      validate:"omitempty,dive,max=50"`
}

type RenterInfoPayload struct {
	FirstName       string `json:"first_name"       validate:"required,max=100"`
	LastName        string `json:"last_name"        validate:"required,max=100"`
	Phone           string `json:"phone"            validate:"required,max=20"`
	Email           string `json:"email"            validate:"omitempty,email,max=100"`
	Address         string `json:"address"          validate:"omitempty,max=255"`
	City            string `json:"city"             validate:"omitempty,max=100"`
	PostalCode      string `json:"postal_code"      validate:"omitempty,max=10"`
	LicensePhoto    string `json:"license_photo"    validate:"omitempty,mimetypes=image/jpeg image/png image/webp,maxfilesize=5"`
	LicenseExpiry   string `json:"license_expiry"   validate:"omitempty,datetime=2006-01-02"`
	PassportNumber  string `json:"passport_number"  validate:"omitempty,max=50"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=500"`
}

// MergeDraftRequest is a partial draft. Nil fields leave the stored draft
// untouched; present fields overwrite their counterpart wholesale.
type MergeDraftRequest struct {
	City        *CityRefPayload     `json:"city"         validate:"omitempty"`
	StartDate   *string             `json:"start_date"   validate:"omitempty,datetime=2006-01-02"`
	EndDate     *string             `json:"end_date"     validate:"omitempty,datetime=2006-01-02"`
	StartTime   *string             `json:"start_time"   validate:"omitempty,datetime=15:04"`
	EndTime     *string             `json:"end_time"     validate:"omitempty,datetime=15:04"`
	SelectedCar *CarSnapshotPayload `json:"selected_car" validate:"omitempty"`
	RenterInfo  *RenterInfoPayload  `json:"renter_info"  validate:"omitempty"`
}

// ApplyTo merges the request into the draft, last write wins per top-level
// field. licensePhotoURL is the already uploaded attachment location; the raw
// photo never enters the draft.
func (r *MergeDraftRequest) ApplyTo(draft *model.Draft, licensePhotoURL string) {
	if r.City != nil {
		draft.City = &model.CityRef{
			ID:   r.City.ID,
			Name: r.City.Name,
			Note: r.City.Note,
		}
	}

	if r.StartDate != nil {
		draft.StartDate = *r.StartDate
	}

	if r.EndDate != nil {
		draft.EndDate = *r.EndDate
	}

	if r.StartTime != nil {
		draft.StartTime = *r.StartTime
	}

	if r.EndTime != nil {
		draft.EndTime = *r.EndTime
	}

	if r.SelectedCar != nil {
		draft.SelectedCar = &model.CarSnapshot{
			ID:          r.SelectedCar.ID,
			Name:        r.SelectedCar.Name,
			Category:    r.SelectedCar.Category,
			Seats:       r.SelectedCar.Seats,
			PricePerDay: r.SelectedCar.PricePerDay,
			Image:       r.SelectedCar.Image,
			Features:    r.SelectedCar.Features,
		}
	}

	if r.RenterInfo != nil {
		// Clients can only send a photo as a data URI, never echo back the
		// stored URL, so a re-merge without a new photo keeps the old upload.
		if licensePhotoURL == "" && draft.RenterInfo != nil {
			licensePhotoURL = draft.RenterInfo.LicensePhotoURL
		}

		draft.RenterInfo = &model.RenterInfo{
			FirstName:       r.RenterInfo.FirstName,
			LastName:        r.RenterInfo.LastName,
			Phone:           r.RenterInfo.Phone,
			Email:           r.RenterInfo.Email,
			Address:         r.RenterInfo.Address,
			City:            r.RenterInfo.City,
			PostalCode:      r.RenterInfo.PostalCode,
			LicensePhotoURL: licensePhotoURL,
			LicenseExpiry:   r.RenterInfo.LicenseExpiry,
			PassportNumber:  r.RenterInfo.PassportNumber,
			SpecialRequests: r.RenterInfo.SpecialRequests,
		}
	}
}

type DraftResponse struct {
	City        *model.CityRef     `json:"city"`
	StartDate   string             `json:"start_date,omitempty"`
	EndDate     string             `json:"end_date,omitempty"`
	StartTime   string             `json:"start_time,omitempty"`
	EndTime     string             `json:"end_time,omitempty"`
	SelectedCar *model.CarSnapshot `json:"selected_car"`
	RenterInfo  *model.RenterInfo  `json:"renter_info"`
	Complete    bool               `json:"complete"`
	Missing     []string           `json:"missing,omitempty"`
}

func (r *DraftResponse) FromModel(draft model.Draft) {
	r.City = draft.City
	r.StartDate = draft.StartDate
	r.EndDate = draft.EndDate
	r.StartTime = draft.StartTime
	r.EndTime = draft.EndTime
	r.SelectedCar = draft.SelectedCar
	r.RenterInfo = draft.RenterInfo
	r.Complete = draft.IsComplete()

	if !r.Complete {
		r.Missing = draft.MissingFields()
	}
}
