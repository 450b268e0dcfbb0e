package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(value string) time.Time {
	parsed, _ := time.Parse("2006-01-02", value)

	return parsed
}

func TestNights(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{name: "same day", start: date("2026-09-01"), end: date("2026-09-01"), want: 1},
		{name: "two day span", start: date("2026-09-01"), end: date("2026-09-02"), want: 2},
		{name: "week span", start: date("2026-09-01"), end: date("2026-09-07"), want: 7},
		{name: "end before start clamps to one", start: date("2026-09-07"), end: date("2026-09-01"), want: 1},
		{name: "missing start clamps to one", start: time.Time{}, end: date("2026-09-07"), want: 1},
		{name: "missing end clamps to one", start: date("2026-09-01"), end: time.Time{}, want: 1},
		{name: "partial day rounds up", start: date("2026-09-01"), end: date("2026-09-02").Add(6 * time.Hour), want: 3},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, Nights(test.start, test.end))
		})
	}
}

func TestTotalRevenue(t *testing.T) {
	tests := []struct {
		name     string
		bookings []Booking
		want     int
	}{
		{name: "empty ledger", bookings: []Booking{}, want: 0},
		{
			name: "sums price times nights",
			bookings: []Booking{
				{PricePerDay: 350000, StartDate: date("2026-09-01"), EndDate: date("2026-09-03")},
				{PricePerDay: 500000, StartDate: date("2026-09-10"), EndDate: date("2026-09-10")},
			},
			want: 350000*3 + 500000*1,
		},
		{
			name: "missing price contributes nothing",
			bookings: []Booking{
				{StartDate: date("2026-09-01"), EndDate: date("2026-09-03")},
				{PricePerDay: 100000, StartDate: date("2026-09-01"), EndDate: date("2026-09-01")},
			},
			want: 100000,
		},
		{
			name: "missing dates bill one night",
			bookings: []Booking{
				{PricePerDay: 200000},
			},
			want: 200000,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, TotalRevenue(test.bookings))
		})
	}
}

func TestMostFrequent(t *testing.T) {
	byCity := func(b Booking) string { return b.CityName }

	tests := []struct {
		name     string
		bookings []Booking
		want     string
	}{
		{name: "empty ledger", bookings: []Booking{}, want: ""},
		{
			name: "highest count wins",
			bookings: []Booking{
				{CityName: "Jakarta"},
				{CityName: "Bali"},
				{CityName: "Bali"},
			},
			want: "Bali",
		},
		{
			name: "tie goes to first encountered",
			bookings: []Booking{
				{CityName: "Jakarta"},
				{CityName: "Bali"},
				{CityName: "Jakarta"},
				{CityName: "Bali"},
			},
			want: "Jakarta",
		},
		{
			name: "interleaved tie still goes to first encountered",
			bookings: []Booking{
				{CityName: "Jakarta"},
				{CityName: "Bali"},
				{CityName: "Bali"},
				{CityName: "Jakarta"},
			},
			want: "Jakarta",
		},
		{
			name: "empty values skipped",
			bookings: []Booking{
				{CityName: ""},
				{CityName: ""},
				{CityName: "Surabaya"},
			},
			want: "Surabaya",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, MostFrequent(test.bookings, byCity))
		})
	}
}
