package model

const (
	EntityName = "draft"
)

// CityRef is the normalized city reference held by a draft. Only the fields a
// booking record needs are carried, never the full city row.
type CityRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Note string `json:"note,omitempty"`
}

// CarSnapshot is a full copy of the selected car at selection time. The draft
// keeps the copy so that later car edits never change an in-flight booking.
type CarSnapshot struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Seats       int      `json:"seats"`
	PricePerDay int      `json:"price_per_day"`
	Image       string   `json:"image,omitempty"`
	Features    []string `json:"features,omitempty"`
}

type RenterInfo struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Phone           string `json:"phone"`
	Email           string `json:"email,omitempty"`
	Address         string `json:"address,omitempty"`
	City            string `json:"city,omitempty"`
	PostalCode      string `json:"postal_code,omitempty"`
	LicensePhotoURL string `json:"license_photo_url,omitempty"`
	LicenseExpiry   string `json:"license_expiry,omitempty"`
	PassportNumber  string `json:"passport_number,omitempty"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

// Draft is the single in-progress booking of one session. Every field stays
// optional until finalization; steps may be filled in any order.
type Draft struct {
	City        *CityRef     `json:"city,omitempty"`
	StartDate   string       `json:"start_date,omitempty"`
	EndDate     string       `json:"end_date,omitempty"`
	StartTime   string       `json:"start_time,omitempty"`
	EndTime     string       `json:"end_time,omitempty"`
	SelectedCar *CarSnapshot `json:"selected_car,omitempty"`
	RenterInfo  *RenterInfo  `json:"renter_info,omitempty"`
}

// MissingFields lists what finalization still requires. Times and renter info
// are optional even at finalization time.
func (d *Draft) MissingFields() []string {
	missing := []string{}

	if d.City == nil {
		missing = append(missing, "city")
	}

	if d.StartDate == "" {
		missing = append(missing, "start_date")
	}

	if d.EndDate == "" {
		missing = append(missing, "end_date")
	}

	if d.SelectedCar == nil {
		missing = append(missing, "selected_car")
	}

	return missing
}

func (d *Draft) IsComplete() bool {
	return len(d.MissingFields()) == 0
}
