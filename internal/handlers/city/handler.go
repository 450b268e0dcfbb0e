package city

import (
	"kiraya/infras/otel"
	"kiraya/internal/domains/city/model"
	"kiraya/internal/domains/city/model/dto"
	"kiraya/internal/domains/city/service"
	"kiraya/shared"
	"kiraya/shared/constant"
	gDto "kiraya/shared/dto"
	"kiraya/shared/validator"
	"kiraya/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.City
	otel    otel.Otel
}

func New(service service.City, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/cities", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCity)
		routerGroup.Get("/", handler.GetCities)
		routerGroup.Get("/{id}", handler.GetCityByID)
		routerGroup.Patch("/{id}", handler.UpdateCity)
		routerGroup.Delete("/{id}", handler.DeleteCity)
	})
}

// CreateCity handles the creation of a new pickup city.
// @Summary Create a new city
// @Description Add a pickup city with the provided details.
// @Tags City
// @Accept json
// @Produce json
// @Param request body dto.CreateCityRequest true "Create City Request"
// @Success 201 {object} response.Message "City created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cities [post]
// @Security BearerAuth
func (handler *Handler) CreateCity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCity")
	defer scope.End()

	req := dto.CreateCityRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create city")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("City created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "City created successfully")
}

// GetCities retrieves pickup cities based on query parameters.
// @Summary Get all cities
// @Description Retrieve pickup cities with optional filtering and pagination for the wizard's city step.
// @Tags City
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param station query string false "Filter by train station availability (true/false)"
// @Param airport query string false "Filter by airport availability (true/false)"
// @Success 200 {object} response.Data[dto.GetCitiesResponse] "List of cities"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cities [get]
func (handler *Handler) GetCities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCities")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if station := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldStation)); station != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStation,
			Operator: gDto.FilterOperatorEq,
			Value:    *station,
			Table:    model.TableName,
		})
	}

	if airport := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldAirport)); airport != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldAirport,
			Operator: gDto.FilterOperatorEq,
			Value:    *airport,
			Table:    model.TableName,
		})
	}

	cities, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cities")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cities retrieved successfully")

	response.WithJSON(w, http.StatusOK, cities)
}

// GetCityByID retrieves a city by its ID.
// @Summary Get a city by ID
// @Description Retrieve a pickup city by its unique identifier.
// @Tags City
// @Accept json
// @Produce json
// @Param id path string true "City ID"
// @Success 200 {object} response.Data[dto.CityResponse] "City details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cities/{id} [get]
func (handler *Handler) GetCityByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCityByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	city, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get city by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("City retrieved successfully")

	response.WithJSON(w, http.StatusOK, city)
}

// UpdateCity updates an existing city by its ID.
// @Summary Update a city by ID
// @Description Update the details of an existing pickup city.
// @Tags City
// @Accept json
// @Produce json
// @Param id path string true "City ID"
// @Param request body dto.UpdateCityRequest true "Update City Request"
// @Success 200 {object} response.Message "City updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cities/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCity")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateCityRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update city")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("City updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "City updated successfully")
}

// DeleteCity deletes a city by its ID.
// @Summary Delete a city by ID
// @Description Remove a pickup city using its unique identifier.
// @Tags City
// @Accept json
// @Produce json
// @Param id path string true "City ID"
// @Success 200 {object} response.Message "City deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cities/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCity")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete city")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("City deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "City deleted successfully")
}
