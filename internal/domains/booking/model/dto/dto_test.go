package dto

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchBookingsRequestFromRequest(t *testing.T) {
	req := httptest.NewRequest("GET", "/v1/bookings?search=bali&date_from=2026-01-01&date_to=2026-01-31", nil)

	searchReq := SearchBookingsRequest{}
	searchReq.FromRequest(req)

	assert.Equal(t, "bali", searchReq.Search)
	assert.Equal(t, "2026-01-01", searchReq.DateFrom)
	assert.Equal(t, "2026-01-31", searchReq.DateTo)
}

func TestSearchBookingsRequestToFilter(t *testing.T) {
	t.Run("no criteria yields empty clause", func(t *testing.T) {
		searchReq := SearchBookingsRequest{}

		filter := searchReq.ToFilter()
		where, args := filter.GetWhereClause()

		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("search matches city, car and renter names", func(t *testing.T) {
		searchReq := SearchBookingsRequest{Search: "ali"}

		filter := searchReq.ToFilter()
		where, args := filter.GetWhereClause()

		assert.Contains(t, where, "LOWER(bookings.city_name) LIKE LOWER(:search_city)")
		assert.Contains(t, where, "LOWER(bookings.car_name) LIKE LOWER(:search_car)")
		assert.Contains(t, where, "LOWER(bookings.renter_first_name) LIKE LOWER(:search_first_name)")
		assert.Contains(t, where, "LOWER(bookings.renter_last_name) LIKE LOWER(:search_last_name)")
		assert.Contains(t, where, " OR ")
		assert.NotContains(t, where, "start_date")
		assert.NotContains(t, where, "end_date")

		assert.Equal(t, "%ali%", args["search_city"])
		assert.Equal(t, "%ali%", args["search_car"])
		assert.Equal(t, "%ali%", args["search_first_name"])
		assert.Equal(t, "%ali%", args["search_last_name"])
	})

	t.Run("date range closes over the rental period", func(t *testing.T) {
		searchReq := SearchBookingsRequest{DateFrom: "2026-01-01", DateTo: "2026-01-31"}

		filter := searchReq.ToFilter()
		where, args := filter.GetWhereClause()

		assert.Equal(t, "(bookings.start_date >= :date_from AND bookings.end_date <= :date_to)", where)
		assert.Equal(t, "2026-01-01", args["date_from"])
		assert.Equal(t, "2026-01-31", args["date_to"])
	})

	t.Run("search and dates are ANDed", func(t *testing.T) {
		searchReq := SearchBookingsRequest{Search: "bali", DateFrom: "2026-01-01", DateTo: "2026-01-31"}

		filter := searchReq.ToFilter()
		where, args := filter.GetWhereClause()

		assert.Contains(t, where, "LOWER(bookings.city_name) LIKE LOWER(:search_city)")
		assert.Contains(t, where, ") AND bookings.start_date >= :date_from AND bookings.end_date <= :date_to)")

		assert.Equal(t, "%bali%", args["search_city"])
		assert.Equal(t, "2026-01-01", args["date_from"])
		assert.Equal(t, "2026-01-31", args["date_to"])
	})
}
