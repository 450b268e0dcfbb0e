package draft

import (
	"kiraya/infras/otel"
	"kiraya/internal/domains/draft/model/dto"
	"kiraya/internal/domains/draft/service"
	"kiraya/shared/constant"
	"kiraya/shared/failure"
	"kiraya/shared/validator"
	"kiraya/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Draft
	otel    otel.Otel
}

func New(service service.Draft, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/draft", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetDraft)
		routerGroup.Patch("/", handler.MergeDraft)
		routerGroup.Delete("/", handler.ResetDraft)
	})
}

// GetDraft retrieves the in-progress booking draft for the caller's session.
// @Summary Get the session's booking draft
// @Description Retrieve the partial booking accumulated so far for the session identified by the X-Session-ID header.
// @Tags Draft
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Wizard session identifier"
// @Success 200 {object} response.Data[dto.DraftResponse] "Current draft state"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/draft [get]
func (handler *Handler) GetDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDraft")
	defer scope.End()

	sessionID := r.Header.Get(constant.RequestHeaderSessionID)
	if sessionID == "" {
		scope.TraceError(failure.MissingSessionID)

		response.WithError(w, failure.MissingSessionID)

		return
	}

	draft, err := handler.service.Get(ctx, sessionID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get draft")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Draft retrieved successfully")

	response.WithJSON(w, http.StatusOK, draft)
}

// MergeDraft merges a partial wizard step into the session's draft.
// @Summary Merge fields into the booking draft
// @Description Merge the provided fields into the session's draft. Absent fields are left untouched, present sub-objects replace their previous value wholesale.
// @Tags Draft
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Wizard session identifier"
// @Param request body dto.MergeDraftRequest true "Merge Draft Request"
// @Success 200 {object} response.Data[dto.DraftResponse] "Draft state after the merge"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/draft [patch]
func (handler *Handler) MergeDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MergeDraft")
	defer scope.End()

	sessionID := r.Header.Get(constant.RequestHeaderSessionID)
	if sessionID == "" {
		scope.TraceError(failure.MissingSessionID)

		response.WithError(w, failure.MissingSessionID)

		return
	}

	req := dto.MergeDraftRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	draft, err := handler.service.Merge(ctx, sessionID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to merge draft")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Draft merged successfully")

	response.WithJSON(w, http.StatusOK, draft)
}

// ResetDraft discards the session's draft.
// @Summary Reset the booking draft
// @Description Discard the session's draft so the wizard starts over from an empty state.
// @Tags Draft
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Wizard session identifier"
// @Success 200 {object} response.Message "Draft reset successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/draft [delete]
func (handler *Handler) ResetDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResetDraft")
	defer scope.End()

	sessionID := r.Header.Get(constant.RequestHeaderSessionID)
	if sessionID == "" {
		scope.TraceError(failure.MissingSessionID)

		response.WithError(w, failure.MissingSessionID)

		return
	}

	if err := handler.service.Reset(ctx, sessionID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reset draft")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Draft reset successfully")

	response.WithMessage(w, http.StatusOK, "Draft reset successfully")
}
