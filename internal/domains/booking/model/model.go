package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	draftModel "kiraya/internal/domains/draft/model"
	"kiraya/shared/model"
	"math"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldBookingDate     = "booking_date"
	FieldCityID          = "city_id"
	FieldCityName        = "city_name"
	FieldCityNote        = "city_note"
	FieldStartDate       = "start_date"
	FieldEndDate         = "end_date"
	FieldStartTime       = "start_time"
	FieldEndTime         = "end_time"
	FieldCarID           = "car_id"
	FieldCarName         = "car_name"
	FieldPricePerDay     = "price_per_day"
	FieldCar             = "car"
	FieldRenterFirstName = "renter_first_name"
	FieldRenterLastName  = "renter_last_name"
	FieldRenter          = "renter"
)

var errScanJSONB = errors.New("unsupported jsonb source type")

// Car is the selected car snapshot persisted as a jsonb column. The ledger
// keeps the copy taken at booking time, detached from the cars table.
type Car draftModel.CarSnapshot

func (c Car) Value() (driver.Value, error) {
	value, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal car snapshot: %w", err)
	}

	return value, nil
}

func (c *Car) Scan(src any) error {
	return scanJSONB(src, c)
}

// Renter is the renter details snapshot persisted as a jsonb column.
type Renter draftModel.RenterInfo

func (r Renter) Value() (driver.Value, error) {
	value, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal renter snapshot: %w", err)
	}

	return value, nil
}

func (r *Renter) Scan(src any) error {
	return scanJSONB(src, r)
}

func scanJSONB(src, dst any) error {
	switch value := src.(type) {
	case nil:
		return nil
	case []byte:
		if err := json.Unmarshal(value, dst); err != nil {
			return fmt.Errorf("failed to unmarshal jsonb column: %w", err)
		}

		return nil
	case string:
		if err := json.Unmarshal([]byte(value), dst); err != nil {
			return fmt.Errorf("failed to unmarshal jsonb column: %w", err)
		}

		return nil
	default:
		return errScanJSONB
	}
}

// Booking is one immutable ledger row. The searchable parts of the city, car
// and renter snapshots are denormalized into their own columns.
type Booking struct {
	ID              string    `db:"id"`
	BookingDate     time.Time `db:"booking_date"`
	CityID          string    `db:"city_id"`
	CityName        string    `db:"city_name"`
	CityNote        string    `db:"city_note"`
	StartDate       time.Time `db:"start_date"`
	EndDate         time.Time `db:"end_date"`
	StartTime       string    `db:"start_time"`
	EndTime         string    `db:"end_time"`
	CarID           string    `db:"car_id"`
	CarName         string    `db:"car_name"`
	PricePerDay     int       `db:"price_per_day"`
	Car             Car       `db:"car"`
	RenterFirstName string    `db:"renter_first_name"`
	RenterLastName  string    `db:"renter_last_name"`
	Renter          Renter    `db:"renter"`
	model.Metadata
}

// Nights is the charged duration of a rental period. A same-day rental counts
// as one night, and a ledger row with a broken period still bills at least one.
func Nights(start, end time.Time) int {
	if start.IsZero() || end.IsZero() {
		return 1
	}

	days := int(math.Ceil(end.Sub(start).Hours() / 24))

	nights := days + 1
	if nights < 1 {
		nights = 1
	}

	return nights
}

func (b *Booking) Nights() int {
	return Nights(b.StartDate, b.EndDate)
}

// Revenue is the row's contribution to total revenue. A row without a price
// contributes nothing.
func (b *Booking) Revenue() int {
	return b.PricePerDay * b.Nights()
}

// TotalRevenue sums the revenue of every row.
func TotalRevenue(bookings []Booking) int {
	total := 0
	for i := range bookings {
		total += bookings[i].Revenue()
	}

	return total
}

// MostFrequent returns the key value occurring most often, ties going to the
// first one encountered. Empty key values are skipped; no rows means "".
func MostFrequent(bookings []Booking, key func(Booking) string) string {
	counts := map[string]int{}

	bestCount := 0

	for _, booking := range bookings {
		k := key(booking)
		if k == "" {
			continue
		}

		counts[k]++

		if counts[k] > bestCount {
			bestCount = counts[k]
		}
	}

	// Ties resolve by first appearance, so a later key can never displace an
	// earlier one that reached the same count.
	for _, booking := range bookings {
		if k := key(booking); k != "" && counts[k] == bestCount {
			return k
		}
	}

	return ""
}
