package model

import (
	"kiraya/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "cars"
	EntityName = "car"

	FieldID          = "id"
	FieldName        = "name"
	FieldCategory    = "category"
	FieldSeats       = "seats"
	FieldPricePerDay = "price_per_day"
	FieldImage       = "image"
	FieldFeatures    = "features"
	FieldActive      = "active"
)

type Car struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Category    string         `db:"category"`
	Seats       int            `db:"seats"`
	PricePerDay int            `db:"price_per_day"`
	Image       string         `db:"image"`
	Features    pq.StringArray `db:"features"`
	Active      bool           `db:"active"`
	model.Metadata
}
