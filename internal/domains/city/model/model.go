package model

import "kiraya/shared/model"

const (
	TableName  = "cities"
	EntityName = "city"

	FieldID      = "id"
	FieldName    = "name"
	FieldNote    = "note"
	FieldStation = "station"
	FieldAirport = "airport"
	FieldImage   = "image"
)

type City struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Note    string `db:"note"`
	Station bool   `db:"station"`
	Airport bool   `db:"airport"`
	Image   string `db:"image"`
	model.Metadata
}
