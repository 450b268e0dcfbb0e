package service

import (
	"context"
	"fmt"
	"kiraya/config"
	"kiraya/infras/otel"
	"kiraya/infras/s3"
	"kiraya/internal/domains/draft/model"
	"kiraya/internal/domains/draft/model/dto"
	"kiraya/internal/domains/draft/store"
	"kiraya/shared/base64"
	"kiraya/shared/constant"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var extByContentType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type Draft interface {
	Get(ctx context.Context, sessionID string) (dto.DraftResponse, error)
	Merge(ctx context.Context, sessionID string, req dto.MergeDraftRequest) (dto.DraftResponse, error)
	Reset(ctx context.Context, sessionID string) error
}

type serviceImpl struct {
	store store.DraftStore
	cfg   *config.Config
	otel  otel.Otel
	s3    s3.S3
}

func New(store store.DraftStore, cfg *config.Config, otel otel.Otel, s3 s3.S3) Draft {
	return &serviceImpl{
		store: store,
		cfg:   cfg,
		otel:  otel,
		s3:    s3,
	}
}

// Get returns the session's draft. A session without a draft gets an empty
// one; absence is never an error.
func (s *serviceImpl) Get(ctx context.Context, sessionID string) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, _, err := s.store.Get(ctx, sessionID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get draft")

		return res, fmt.Errorf("failed to get draft: %w", err)
	}

	res.FromModel(draft)

	return res, nil
}

func (s *serviceImpl) Merge(ctx context.Context, sessionID string, req dto.MergeDraftRequest) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Merge")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, _, err := s.store.Get(ctx, sessionID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get draft")

		return res, fmt.Errorf("failed to get draft: %w", err)
	}

	var licensePhotoURL string

	if req.RenterInfo != nil && req.RenterInfo.LicensePhoto != "" {
		licensePhotoURL, err = s.uploadLicensePhoto(ctx, req.RenterInfo.LicensePhoto)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload license photo")

			return res, fmt.Errorf("failed to upload license photo: %w", err)
		}
	}

	req.ApplyTo(&draft, licensePhotoURL)

	if err = s.store.Save(ctx, sessionID, draft); err != nil {
		log.Error().Err(err).Msg("failed to save draft")

		return res, fmt.Errorf("failed to save draft: %w", err)
	}

	res.FromModel(draft)

	return res, nil
}

func (s *serviceImpl) Reset(ctx context.Context, sessionID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reset")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.store.Delete(ctx, sessionID); err != nil {
		log.Error().Err(err).Msg("failed to reset draft")

		return fmt.Errorf("failed to reset draft: %w", err)
	}

	return nil
}

func (s *serviceImpl) uploadLicensePhoto(ctx context.Context, photo string) (string, error) {
	data, err := base64.Decode(photo)
	if err != nil {
		return "", fmt.Errorf("failed to decode license photo: %w", err)
	}

	contentType := base64.GetContentType(photo)
	fileName := uuid.NewString() + extByContentType[contentType]

	url, err := s.s3.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, model.EntityName, fileName, contentType, data)
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return url, nil
}
