package dto

import (
	"kiraya/internal/domains/city/model"
	"kiraya/shared"
	gDto "kiraya/shared/dto"
	gModel "kiraya/shared/model"
	"kiraya/shared/timezone"

	"github.com/google/uuid"
)

type CreateCityRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Note    string `json:"note"    validate:"omitempty,max=255"`
	Station bool   `json:"station" validate:"omitempty"`
	Airport bool   `json:"airport" validate:"omitempty"`
	Image   string `json:"image"   validate:"omitempty,mimetypes=image/jpeg image/png image/webp,maxfilesize=2"`
}

func (c *CreateCityRequest) ToModel(user string, imageURL string) model.City {
	return model.City{
		ID:      uuid.NewString(),
		Name:    c.Name,
		Note:    c.Note,
		Station: c.Station,
		Airport: c.Airport,
		Image:   imageURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCityRequest struct {
	Name    string `db:"name"    json:"name"    validate:"omitempty,max=100"`
	Note    string `db:"note"    json:"note"    validate:"omitempty,max=255"`
	Station *bool  `db:"station" json:"station" validate:"omitempty"`
	Airport *bool  `db:"airport" json:"airport" validate:"omitempty"`
	Image   string `json:"image" validate:"omitempty,mimetypes=image/jpeg image/png image/webp,maxfilesize=2"`
}

type CityResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Note    string `json:"note,omitempty"`
	Station bool   `json:"station"`
	Airport bool   `json:"airport"`
	Image   string `json:"image,omitempty"`
	gDto.Metadata
}

func (r *CityResponse) FromModel(model model.City) {
	r.ID = model.ID
	r.Name = model.Name
	r.Note = model.Note
	r.Station = model.Station
	r.Airport = model.Airport
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)
}

type GetCitiesResponse struct {
	Cities    []CityResponse `json:"cities"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetCitiesResponse) FromModels(models []model.City, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Cities = make([]CityResponse, len(models))
	for i, mod := range models {
		r.Cities[i].FromModel(mod)
	}
}
