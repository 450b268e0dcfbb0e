package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"kiraya/config"
	"kiraya/infras/otel/mocks"
	s3Mocks "kiraya/infras/s3/mocks"
	carMocks "kiraya/internal/domains/car/mocks"
	"kiraya/internal/domains/car/model"
	"kiraya/internal/domains/car/model/dto"
	"kiraya/internal/domains/car/service"
	cacheMocks "kiraya/shared/cache/mocks"
	"kiraya/shared/constant"
	gDto "kiraya/shared/dto"
)

var cacheMiss = errors.New("cache miss")

func newService(t *testing.T) (service.Car, *carMocks.MockCar, *cacheMocks.MockRedisCache, *s3Mocks.MockS3) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := carMocks.NewMockCar(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockS3 := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "kiraya-test"

	svc := service.New(mockRepo, cfg, mockCache, mockOtel, mockS3)

	return svc, mockRepo, mockCache, mockS3
}

func TestCarService_Create(t *testing.T) {
	t.Run("without image", func(t *testing.T) {
		svc, mockRepo, mockCache, _ := newService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, car model.Car) error {
				assert.NotEmpty(t, car.ID)
				assert.Equal(t, "Avanza", car.Name)
				assert.True(t, car.Active)

				return nil
			})

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
		err := svc.Create(ctx, dto.CreateCarRequest{Name: "Avanza", PricePerDay: 350000, Seats: 7})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("image uploaded to S3 before insert", func(t *testing.T) {
		svc, mockRepo, mockCache, mockS3 := newService(t)

		mockS3.EXPECT().
			UploadFileBytes(gomock.Any(), "kiraya-test", model.EntityName, gomock.Any(), "image/jpeg", []byte("hello")).
			Return("https://cdn.example.com/car/abc.jpg", nil)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, car model.Car) error {
				assert.Equal(t, "https://cdn.example.com/car/abc.jpg", car.Image)

				return nil
			})

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.Create(context.Background(), dto.CreateCarRequest{
			Name:        "Jazz",
			PricePerDay: 400000,
			Image:       "data:image/jpeg;base64,aGVsbG8=",
		})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("upload failure aborts create", func(t *testing.T) {
		svc, _, _, mockS3 := newService(t)

		mockS3.EXPECT().
			UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("s3 unavailable"))

		err := svc.Create(context.Background(), dto.CreateCarRequest{
			Name:        "Jazz",
			PricePerDay: 400000,
			Image:       "data:image/jpeg;base64,aGVsbG8=",
		})

		assert.Error(t, err)
	})
}

func TestCarService_GetAll(t *testing.T) {
	svc, mockRepo, mockCache, _ := newService(t)

	activeFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldActive, Value: true, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cacheMiss).
		Times(2)

	mockRepo.EXPECT().
		Count(gomock.Any(), activeFilter).
		Return(1, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), activeFilter).
		Return([]model.Car{{ID: "car-1", Name: "Avanza", Active: true}}, nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, activeFilter)

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Len(t, res.Cars, 1)
	assert.Equal(t, "Avanza", res.Cars[0].Name)
}

func TestCarService_Delete(t *testing.T) {
	t.Run("deletes row and image", func(t *testing.T) {
		svc, mockRepo, mockCache, mockS3 := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Car{ID: "car-1", Image: "https://cdn.example.com/car/abc.jpg"}, nil)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		mockCache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		mockS3.EXPECT().
			GetObjectNameFromURL("kiraya-test", "https://cdn.example.com/car/abc.jpg").
			Return("abc.jpg")

		mockS3.EXPECT().
			DeleteFile(gomock.Any(), "kiraya-test", model.EntityName, "abc.jpg").
			Return(nil)

		err := svc.Delete(context.Background(), "car-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("missing car", func(t *testing.T) {
		svc, mockRepo, _, _ := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Car{}, nil)

		err := svc.Delete(context.Background(), "missing")

		assert.Error(t, err)
	})
}
