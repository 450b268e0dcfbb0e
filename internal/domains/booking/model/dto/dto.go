package dto

import (
	"kiraya/internal/domains/booking/model"
	draftModel "kiraya/internal/domains/draft/model"
	"kiraya/shared"
	"kiraya/shared/constant"
	gDto "kiraya/shared/dto"
	gModel "kiraya/shared/model"
	"kiraya/shared/timezone"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// PlaceholderNone is what the dashboard shows when the ledger has no rows to
// rank.
const PlaceholderNone = "--"

const recentLimit = 5

// FromDraft stamps a finalized draft into a ledger row. The draft's date
// fields were validated at merge time; a value that still fails to parse
// stays zero and bills the minimum duration.
func FromDraft(draft draftModel.Draft, user string) model.Booking {
	booking := model.Booking{
		ID:          uuid.NewString(),
		BookingDate: timezone.Now(),
		StartTime:   draft.StartTime,
		EndTime:     draft.EndTime,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if start, err := timezone.Parse(constant.CalendarDateFormat, draft.StartDate); err == nil {
		booking.StartDate = start
	}

	if end, err := timezone.Parse(constant.CalendarDateFormat, draft.EndDate); err == nil {
		booking.EndDate = end
	}

	if draft.City != nil {
		booking.CityID = draft.City.ID
		booking.CityName = draft.City.Name
		booking.CityNote = draft.City.Note
	}

	if draft.SelectedCar != nil {
		booking.CarID = draft.SelectedCar.ID
		booking.CarName = draft.SelectedCar.Name
		booking.PricePerDay = draft.SelectedCar.PricePerDay
		booking.Car = model.Car(*draft.SelectedCar)
	}

	if draft.RenterInfo != nil {
		booking.RenterFirstName = draft.RenterInfo.FirstName
		booking.RenterLastName = draft.RenterInfo.LastName
		booking.Renter = model.Renter(*draft.RenterInfo)
	}

	return booking
}

// SearchBookingsRequest carries the optional list criteria. All of them are
// ANDed; none set means the full ledger in insertion order.
type SearchBookingsRequest struct {
	Search   string `json:"search"    validate:"omitempty,max=100"`
	DateFrom string `json:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `json:"date_to"   validate:"omitempty,datetime=2006-01-02"`
}

func (r *SearchBookingsRequest) FromRequest(req *http.Request) {
	query := req.URL.Query()

	r.Search = query.Get(constant.RequestParamSearch)
	r.DateFrom = query.Get(constant.RequestParamDateFrom)
	r.DateTo = query.Get(constant.RequestParamDateTo)
}

// ToFilter builds the WHERE criteria: free text matches city, car or renter
// name; the date bounds close over the rental period.
func (r *SearchBookingsRequest) ToFilter() gDto.FilterGroup {
	filters := []any{}

	if r.Search != "" {
		filters = append(filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{ArgName: "search_city", Field: model.FieldCityName, Value: r.Search, Operator: gDto.FilterOperatorLike, Table: model.TableName},
				gDto.Filter{ArgName: "search_car", Field: model.FieldCarName, Value: r.Search, Operator: gDto.FilterOperatorLike, Table: model.TableName},
				gDto.Filter{ArgName: "search_first_name", Field: model.FieldRenterFirstName, Value: r.Search, Operator: gDto.FilterOperatorLike, Table: model.TableName},
				gDto.Filter{ArgName: "search_last_name", Field: model.FieldRenterLastName, Value: r.Search, Operator: gDto.FilterOperatorLike, Table: model.TableName},
			},
		})
	}

	if r.DateFrom != "" {
		filters = append(filters, gDto.Filter{ArgName: "date_from", Field: model.FieldStartDate, Value: r.DateFrom, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName})
	}

	if r.DateTo != "" {
		filters = append(filters, gDto.Filter{ArgName: "date_to", Field: model.FieldEndDate, Value: r.DateTo, Operator: gDto.FilterOperatorLessEq, Table: model.TableName})
	}

	return gDto.FilterGroup{Filters: filters, Operator: gDto.FilterGroupOperatorAnd}
}

type BookingResponse struct {
	ID          string                  `json:"id"`
	BookingDate string                  `json:"booking_date"`
	City        draftModel.CityRef      `json:"city"`
	StartDate   string                  `json:"start_date"`
	EndDate     string                  `json:"end_date"`
	StartTime   string                  `json:"start_time,omitempty"`
	EndTime     string                  `json:"end_time,omitempty"`
	Car         draftModel.CarSnapshot  `json:"car"`
	Renter      *draftModel.RenterInfo  `json:"renter,omitempty"`
	PricePerDay int                     `json:"price_per_day"`
	Nights      int                     `json:"nights"`
	Total       int                     `json:"total"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.BookingDate = timezone.Format(booking.BookingDate, constant.DateFormat)
	r.City = draftModel.CityRef{ID: booking.CityID, Name: booking.CityName, Note: booking.CityNote}
	r.StartDate = formatDate(booking.StartDate)
	r.EndDate = formatDate(booking.EndDate)
	r.StartTime = booking.StartTime
	r.EndTime = booking.EndTime
	r.Car = draftModel.CarSnapshot(booking.Car)
	r.PricePerDay = booking.PricePerDay
	r.Nights = booking.Nights()
	r.Total = booking.Revenue()
	r.Metadata.FromModel(booking.Metadata)

	if booking.RenterFirstName != "" || booking.RenterLastName != "" {
		renter := draftModel.RenterInfo(booking.Renter)
		r.Renter = &renter
	}
}

func formatDate(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return timezone.Format(value, constant.CalendarDateFormat)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type StatsResponse struct {
	TotalRevenue    int               `json:"total_revenue"`
	TotalBookings   int               `json:"total_bookings"`
	MostPopularCity string            `json:"most_popular_city"`
	MostPopularCar  string            `json:"most_popular_car"`
	Recent          []BookingResponse `json:"recent"`
}

// FromModels computes the dashboard figures from the full ledger, given in
// insertion order.
func (r *StatsResponse) FromModels(bookings []model.Booking) {
	r.TotalRevenue = model.TotalRevenue(bookings)
	r.TotalBookings = len(bookings)

	r.MostPopularCity = model.MostFrequent(bookings, func(b model.Booking) string { return b.CityName })
	if r.MostPopularCity == "" {
		r.MostPopularCity = PlaceholderNone
	}

	r.MostPopularCar = model.MostFrequent(bookings, func(b model.Booking) string { return b.CarName })
	if r.MostPopularCar == "" {
		r.MostPopularCar = PlaceholderNone
	}

	start := len(bookings) - recentLimit
	if start < 0 {
		start = 0
	}

	recent := bookings[start:]

	r.Recent = make([]BookingResponse, len(recent))
	for i := range recent {
		r.Recent[i].FromModel(recent[len(recent)-1-i])
	}
}
