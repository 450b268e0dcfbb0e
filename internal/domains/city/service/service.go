package service

import (
	"context"
	"fmt"
	"kiraya/config"
	"kiraya/infras/otel"
	"kiraya/infras/s3"
	"kiraya/internal/domains/city/model"
	"kiraya/internal/domains/city/model/dto"
	"kiraya/internal/domains/city/repository"
	"kiraya/shared"
	"kiraya/shared/base64"
	"kiraya/shared/cache"
	"kiraya/shared/constant"
	gDto "kiraya/shared/dto"
	"kiraya/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetCity    = "city:get"
	cacheGetAllCity = "city:gets"
	cacheCountCity  = "city:count"
)

var extByContentType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type City interface {
	Create(ctx context.Context, req dto.CreateCityRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCitiesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.CityResponse, error)
	Update(ctx context.Context, req dto.UpdateCityRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.City
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.City, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) City {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCityRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var imageURL string

	if req.Image != "" {
		imageURL, err = s.uploadImage(ctx, req.Image)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload city image")

			return fmt.Errorf("failed to upload city image: %w", err)
		}
	}

	if err = s.repo.Insert(ctx, req.ToModel(user, imageURL)); err != nil {
		log.Error().Err(err).Msg("failed to create city")

		return fmt.Errorf("failed to create city: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCity)
		shared.InvalidateCaches(c, s.cache, cacheCountCity)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCitiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCity, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for cities")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count cities")

		return res, fmt.Errorf("failed to count cities: %w", err)
	}

	cities, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cities")

		return res, fmt.Errorf("failed to get cities: %w", err)
	}

	res.FromModels(cities, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save cities to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountCity, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for city count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count cities")

		return total, fmt.Errorf("failed to count cities: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save city count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCity, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for city")

		return res, nil
	}

	city, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get city")

		return res, fmt.Errorf("failed to get city: %w", err)
	}

	if city.ID == constant.Empty {
		return res, failure.NotFound("city not found") //nolint:wrapcheck
	}

	res.FromModel(city)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save city to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCityRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if city exists")

		return fmt.Errorf("failed to check if city exists: %w", err)
	}

	if !exist {
		log.Error().Msg("city not found")

		return failure.NotFound("city not found") //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if req.Image != "" {
		imageURL, err := s.uploadImage(ctx, req.Image)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload city image")

			return fmt.Errorf("failed to upload city image: %w", err)
		}

		updatedFields[model.FieldImage] = imageURL
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update city")

		return fmt.Errorf("failed to update city: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCity, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete city from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCity)
		shared.InvalidateCaches(c, s.cache, cacheCountCity)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	city, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get city for deletion")

		return fmt.Errorf("failed to get city: %w", err)
	}

	if city.ID == constant.Empty {
		log.Error().Msg("city not found")

		return failure.NotFound("city not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete city")

		return fmt.Errorf("failed to delete city: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCity, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete city from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCity)
		shared.InvalidateCaches(c, s.cache, cacheCountCity)

		if city.Image != "" {
			bucketName := s.cfg.External.S3.BucketName

			objectName := s.s3.GetObjectNameFromURL(bucketName, city.Image)
			if objectName == constant.Empty {
				log.Warn().Str("url", city.Image).Msg("failed to extract object name from URL")

				return
			}

			if err := s.s3.DeleteFile(c, bucketName, model.EntityName, objectName); err != nil {
				log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete city image from S3")
			}
		}
	}()

	return nil
}

func (s *serviceImpl) uploadImage(ctx context.Context, image string) (string, error) {
	data, err := base64.Decode(image)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	contentType := base64.GetContentType(image)
	fileName := uuid.NewString() + extByContentType[contentType]

	url, err := s.s3.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, model.EntityName, fileName, contentType, data)
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return url, nil
}
