package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"kiraya/config"
	"kiraya/infras/otel/mocks"
	s3Mocks "kiraya/infras/s3/mocks"
	"kiraya/internal/domains/draft/model"
	"kiraya/internal/domains/draft/model/dto"
	"kiraya/internal/domains/draft/service"
	storeMocks "kiraya/internal/domains/draft/store/mocks"
)

const sessionID = "session-1"

func strPtr(s string) *string {
	return &s
}

func TestDraftService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := storeMocks.NewMockDraftStore(ctrl)
	mockOtel := mocks.NewOtel()
	mockS3 := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.Draft.TTL = 86400

	svc := service.New(mockStore, cfg, mockOtel, mockS3)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		check     func(t *testing.T, res dto.DraftResponse)
	}{
		{
			name: "absent draft returns empty draft",
			setupMock: func() {
				mockStore.EXPECT().
					Get(gomock.Any(), sessionID).
					Return(model.Draft{}, false, nil)
			},
			check: func(t *testing.T, res dto.DraftResponse) {
				assert.Nil(t, res.City)
				assert.Nil(t, res.SelectedCar)
				assert.False(t, res.Complete)
			},
		},
		{
			name: "existing draft returned",
			setupMock: func() {
				mockStore.EXPECT().
					Get(gomock.Any(), sessionID).
					Return(model.Draft{StartDate: "2026-09-01"}, true, nil)
			},
			check: func(t *testing.T, res dto.DraftResponse) {
				assert.Equal(t, "2026-09-01", res.StartDate)
			},
		},
		{
			name: "store error propagates",
			setupMock: func() {
				mockStore.EXPECT().
					Get(gomock.Any(), sessionID).
					Return(model.Draft{}, false, errors.New("redis down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), sessionID)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			tt.check(t, res)
		})
	}
}

func TestDraftService_Merge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := storeMocks.NewMockDraftStore(ctrl)
	mockOtel := mocks.NewOtel()
	mockS3 := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.Draft.TTL = 86400
	cfg.External.S3.BucketName = "kiraya-test"

	svc := service.New(mockStore, cfg, mockOtel, mockS3)

	tests := []struct {
		name      string
		req       dto.MergeDraftRequest
		setupMock func()
		wantErr   bool
		check     func(t *testing.T, res dto.DraftResponse)
	}{
		{
			name: "merge into empty draft",
			req: dto.MergeDraftRequest{
				City: &dto.CityRefPayload{ID: "city-1", Name: "Jakarta"},
			},
			setupMock: func() {
				mockStore.EXPECT().
					Get(gomock.Any(), sessionID).
					Return(model.Draft{}, false, nil)

				mockStore.EXPECT().
					Save(gomock.Any(), sessionID, gomock.Any()).
					Return(nil)
			},
			check: func(t *testing.T, res dto.DraftResponse) {
				assert.Equal(t, "Jakarta", res.City.Name)
				assert.False(t, res.Complete)
			},
		},
		{
			name: "merge preserves earlier fields",
			req: dto.MergeDraftRequest{
				SelectedCar: &dto.CarSnapshotPayload{ID: "car-1", Name: "Avanza", PricePerDay: 350000},
			},
			setupMock: func() {
				mockStore.EXPECT().
					Get(gomock.Any(), sessionID).
					Return(model.Draft{
						City:      &model.CityRef{ID: "city-1", Name: "Jakarta"},
						StartDate: "2026-09-01",
						EndDate:   "2026-09-03",
					}, true, nil)

				mockStore.EXPECT().
					Save(gomock.Any(), sessionID, gomock.Any()).
					Return(nil)
			},
			check: func(t *testing.T, res dto.DraftResponse) {
				assert.Equal(t, "Jakarta", res.City.Name)
				assert.Equal(t, "Avanza", res.SelectedCar.Name)
				assert.True(t, res.Complete)
			},
		},
		{
			name: "license photo uploaded to S3",
			req: dto.MergeDraftRequest{
				RenterInfo: &dto.RenterInfoPayload{
					FirstName:    "Budi",
					LastName:     "Santoso",
					Phone:        "0811111111",
					LicensePhoto: "data:image/png;base64,aGVsbG8=",
				},
			},
			setupMock: func() {
				mockStore.EXPECT().
					Get(gomock.Any(), sessionID).
					Return(model.Draft{}, false, nil)

				mockS3.EXPECT().
					UploadFileBytes(gomock.Any(), "kiraya-test", model.EntityName, gomock.Any(), "image/png", []byte("hello")).
					Return("https://cdn.example.com/draft/abc.png", nil)

				mockStore.EXPECT().
					Save(gomock.Any(), sessionID, gomock.Any()).
					Return(nil)
			},
			check: func(t *testing.T, res dto.DraftResponse) {
				assert.Equal(t, "https://cdn.example.com/draft/abc.png", res.RenterInfo.LicensePhotoURL)
			},
		},
		{
			name: "upload failure aborts merge",
			req: dto.MergeDraftRequest{
				RenterInfo: &dto.RenterInfoPayload{
					FirstName:    "Budi",
					LastName:     "Santoso",
					Phone:        "0811111111",
					LicensePhoto: "data:image/png;base64,aGVsbG8=",
				},
			},
			setupMock: func() {
				mockStore.EXPECT().
					Get(gomock.Any(), sessionID).
					Return(model.Draft{}, false, nil)

				mockS3.EXPECT().
					UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("s3 unavailable"))
			},
			wantErr: true,
		},
		{
			name: "save failure propagates",
			req: dto.MergeDraftRequest{
				StartDate: strPtr("2026-09-01"),
			},
			setupMock: func() {
				mockStore.EXPECT().
					Get(gomock.Any(), sessionID).
					Return(model.Draft{}, false, nil)

				mockStore.EXPECT().
					Save(gomock.Any(), sessionID, gomock.Any()).
					Return(errors.New("redis down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Merge(context.Background(), sessionID, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			tt.check(t, res)
		})
	}
}

func TestDraftService_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := storeMocks.NewMockDraftStore(ctrl)
	mockOtel := mocks.NewOtel()
	mockS3 := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}

	svc := service.New(mockStore, cfg, mockOtel, mockS3)

	t.Run("success", func(t *testing.T) {
		mockStore.EXPECT().
			Delete(gomock.Any(), sessionID).
			Return(nil)

		assert.NoError(t, svc.Reset(context.Background(), sessionID))
	})

	t.Run("store error", func(t *testing.T) {
		mockStore.EXPECT().
			Delete(gomock.Any(), sessionID).
			Return(errors.New("redis down"))

		assert.Error(t, svc.Reset(context.Background(), sessionID))
	})
}
