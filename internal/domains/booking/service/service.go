package service

import (
	"context"
	"fmt"
	"kiraya/config"
	"kiraya/infras/otel"
	"kiraya/internal/domains/booking/model"
	"kiraya/internal/domains/booking/model/dto"
	"kiraya/internal/domains/booking/repository"
	draftStore "kiraya/internal/domains/draft/store"
	"kiraya/shared"
	"kiraya/shared/cache"
	"kiraya/shared/constant"
	gDto "kiraya/shared/dto"
	"kiraya/shared/failure"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
	cacheStatsBooking  = "booking:stats"
)

type Booking interface {
	Finalize(ctx context.Context, sessionID string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Remove(ctx context.Context, id string) (bool, error)
	Clear(ctx context.Context) error
	Stats(ctx context.Context) (dto.StatsResponse, error)
}

type serviceImpl struct {
	repo   repository.Booking
	drafts draftStore.DraftStore
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
}

func New(repo repository.Booking, drafts draftStore.DraftStore, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:   repo,
		drafts: drafts,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
	}
}

// Finalize appends the session's draft to the ledger. The draft must carry a
// city, a rental period and a car; anything short of that is rejected and the
// draft stays untouched.
func (s *serviceImpl) Finalize(ctx context.Context, sessionID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Finalize")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, _, err := s.drafts.Get(ctx, sessionID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get draft")

		return res, fmt.Errorf("failed to get draft: %w", err)
	}

	if !draft.IsComplete() {
		missing := strings.Join(draft.MissingFields(), ", ")

		return res, failure.UnprocessableEntity(fmt.Sprintf("incomplete draft: missing %s", missing)) //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == "" {
		user = constant.ContextGuest
	}

	booking := dto.FromDraft(draft, user)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to insert booking")

		return res, fmt.Errorf("failed to insert booking: %w", err)
	}

	// The row is already committed; a failed draft reset only leaves a
	// stale draft behind until its TTL runs out.
	if err := s.drafts.Delete(ctx, sessionID); err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("failed to reset draft after finalize")
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheStatsBooking)
	}()

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	// Insertion order unless the caller asks otherwise.
	if req.SortBy == "" {
		req.SortBy = model.FieldBookingDate
		req.SortDir = gDto.SortDirAsc
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return total, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Remove deletes one ledger row. A missing row is a normal outcome, reported
// through the boolean rather than an error.
func (s *serviceImpl) Remove(ctx context.Context, id string) (found bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Remove")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return false, fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return false, nil
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return false, fmt.Errorf("failed to delete booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheStatsBooking)
	}()

	return true, nil
}

func (s *serviceImpl) Clear(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Clear")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.DeleteAll(ctx); err != nil {
		log.Error().Err(err).Msg("failed to clear bookings")

		return fmt.Errorf("failed to clear bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		// cacheGetBooking is a prefix of every booking cache key.
		shared.InvalidateCaches(c, s.cache, cacheGetBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheStatsBooking)
	}()

	return nil
}

// Stats computes the dashboard aggregates over the full ledger.
func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheStatsBooking, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheStatsBooking).Msg("cache hit for booking stats")

		return res, nil
	}

	params := gDto.QueryParams{SortBy: model.FieldBookingDate, SortDir: gDto.SortDirAsc}

	bookings, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for stats")

		return res, fmt.Errorf("failed to get bookings for stats: %w", err)
	}

	res.FromModels(bookings)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheStatsBooking, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking stats to cache")
		}
	}()

	return res, nil
}
