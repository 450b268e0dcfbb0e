package dto

import (
	"kiraya/internal/domains/car/model"
	draftModel "kiraya/internal/domains/draft/model"
	"kiraya/shared"
	gDto "kiraya/shared/dto"
	gModel "kiraya/shared/model"
	"kiraya/shared/timezone"

	"github.com/google/uuid"
)

type CreateCarRequest struct {
	Name        string   `json:"name"          validate:"required,max=100"`
	Category    string   `json:"category"      validate:"omitempty,max=50"`
	Seats       int      `json:"seats"         validate:"omitempty,min=1,max=20"`
	PricePerDay int      `json:"price_per_day" validate:"required,min=0"`
	Image       string   `json:"image"         validate:"omitempty,mimetypes=image/jpeg image/png image/webp,maxfilesize=2"`
	Features    []string `json:"features"      validate:"omitempty,dive,max=50"`
	Active      *bool    `json:"active"        validate:"omitempty"`
}

func (c *CreateCarRequest) ToModel(user string, imageURL string) model.Car {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Car{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Category:    c.Category,
		Seats:       c.Seats,
		PricePerDay: c.PricePerDay,
		Image:       imageURL,
		Features:    c.Features,
		Active:      active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCarRequest struct {
	Name        string `db:"name"          json:"name"          validate:"omitempty,max=100"`
	Category    string `db:"category"      json:"category"      validate:"omitempty,max=50"`
	Seats       *int   `db:"seats"         json:"seats"         validate:"omitempty,min=1,max=20"`
	PricePerDay *int   `db:"price_per_day" json:"price_per_day" validate:"omitempty,min=0"`
	Image       string `json:"image"       validate:"omitempty,mimetypes=image/jpeg image/png image/webp,maxfilesize=2"`
	Active      *bool  `db:"active"        json:"active"        validate:"omitempty"`
}

type CarResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category,omitempty"`
	Seats       int      `json:"seats"`
	PricePerDay int      `json:"price_per_day"`
	Image       string   `json:"image,omitempty"`
	Features    []string `json:"features,omitempty"`
	Active      bool     `json:"active"`
	gDto.Metadata
}

func (r *CarResponse) FromModel(model model.Car) {
	r.ID = model.ID
	r.Name = model.Name
	r.Category = model.Category
	r.Seats = model.Seats
	r.PricePerDay = model.PricePerDay
	r.Image = model.Image
	r.Features = model.Features
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

// ToSnapshot is the car copy a draft keeps when the wizard selects this car.
func (r *CarResponse) ToSnapshot() draftModel.CarSnapshot {
	return draftModel.CarSnapshot{
		ID:          r.ID,
		Name:        r.Name,
		Category:    r.Category,
		Seats:       r.Seats,
		PricePerDay: r.PricePerDay,
		Image:       r.Image,
		Features:    r.Features,
	}
}

type GetCarsResponse struct {
	Cars      []CarResponse `json:"cars"`
	TotalPage int           `json:"total_page"`
	TotalData int           `json:"total_data"`
}

func (r *GetCarsResponse) FromModels(models []model.Car, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Cars = make([]CarResponse, len(models))
	for i, mod := range models {
		r.Cars[i].FromModel(mod)
	}
}
