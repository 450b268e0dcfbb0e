package booking

import (
	"kiraya/infras/otel"
	"kiraya/internal/domains/booking/model"
	"kiraya/internal/domains/booking/model/dto"
	"kiraya/internal/domains/booking/service"
	"kiraya/shared/constant"
	gDto "kiraya/shared/dto"
	"kiraya/shared/failure"
	"kiraya/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.FinalizeBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/stats", handler.GetStats)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
		routerGroup.Delete("/", handler.ClearBookings)
	})
}

// FinalizeBooking turns the session's completed draft into a confirmed booking.
// @Summary Finalize the session's booking draft
// @Description Validate the session's draft, persist it as a confirmed booking and discard the draft. Fails with 422 if required wizard steps are still missing.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Wizard session identifier"
// @Success 201 {object} response.Data[dto.BookingResponse] "Confirmed booking"
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) FinalizeBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".FinalizeBooking")
	defer scope.End()

	sessionID := r.Header.Get(constant.RequestHeaderSessionID)
	if sessionID == "" {
		scope.TraceError(failure.MissingSessionID)

		response.WithError(w, failure.MissingSessionID)

		return
	}

	booking, err := handler.service.Finalize(ctx, sessionID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to finalize booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking finalized successfully for session " + sessionID)

	response.WithJSON(w, http.StatusCreated, booking)
}

// GetBookings retrieves bookings with optional search and date range filters.
// @Summary Get all bookings
// @Description Retrieve bookings with optional free-text search over city, car and renter names plus a rental date range, paginated.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param search query string false "Match against city, car or renter name"
// @Param date_from query string false "Rental period starts on or after (YYYY-MM-DD)"
// @Param date_to query string false "Rental period ends on or before (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	searchReq := dto.SearchBookingsRequest{}
	searchReq.FromRequest(r)

	bookings, err := handler.service.GetAll(ctx, queryParams, searchReq.ToFilter())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetStats summarizes the booking ledger.
// @Summary Get booking statistics
// @Description Retrieve total revenue, booking count, most popular city and car, and the most recent bookings.
// @Tags Booking
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.StatsResponse] "Ledger statistics"
// @Failure 500 {object} response.Error
// @Router /v1/bookings/stats [get]
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	stats, err := handler.service.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking stats")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking stats retrieved successfully")

	response.WithJSON(w, http.StatusOK, stats)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Description Retrieve a booking by its unique identifier.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// DeleteBooking cancels a booking by its ID.
// @Summary Cancel a booking by ID
// @Description Remove a booking from the ledger using its unique identifier.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking cancelled successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	found, err := handler.service.Remove(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	if !found {
		err := failure.NotFound(model.EntityName)
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking cancelled successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking cancelled successfully")
}

// ClearBookings wipes the whole booking ledger.
// @Summary Clear all bookings
// @Description Remove every booking from the ledger. Intended for administrative resets.
// @Tags Booking
// @Accept json
// @Produce json
// @Success 200 {object} response.Message "Bookings cleared successfully"
// @Failure 500 {object} response.Error
// @Router /v1/bookings [delete]
// @Security BearerAuth
func (handler *Handler) ClearBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ClearBookings")
	defer scope.End()

	if err := handler.service.Clear(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to clear bookings")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Bookings cleared successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Bookings cleared successfully")
}
