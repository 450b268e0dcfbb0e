package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"kiraya/config"
	"kiraya/infras/otel/mocks"
	bookingMocks "kiraya/internal/domains/booking/mocks"
	"kiraya/internal/domains/booking/model"
	bookingDto "kiraya/internal/domains/booking/model/dto"
	"kiraya/internal/domains/booking/service"
	draftModel "kiraya/internal/domains/draft/model"
	storeMocks "kiraya/internal/domains/draft/store/mocks"
	cacheMocks "kiraya/shared/cache/mocks"
	gDto "kiraya/shared/dto"
	"kiraya/shared/failure"
)

const sessionID = "session-1"

var cacheMiss = errors.New("cache miss")

func completeDraft() draftModel.Draft {
	return draftModel.Draft{
		City:      &draftModel.CityRef{ID: "city-1", Name: "Jakarta"},
		StartDate: "2026-09-01",
		EndDate:   "2026-09-03",
		StartTime: "09:00",
		EndTime:   "18:00",
		SelectedCar: &draftModel.CarSnapshot{
			ID:          "car-1",
			Name:        "Avanza",
			Category:    "MPV",
			Seats:       7,
			PricePerDay: 350000,
		},
		RenterInfo: &draftModel.RenterInfo{
			FirstName: "Budi",
			LastName:  "Santoso",
			Phone:     "0811111111",
		},
	}
}

func newService(t *testing.T) (service.Booking, *bookingMocks.MockBooking, *storeMocks.MockDraftStore, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockStore := storeMocks.NewMockDraftStore(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockStore, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockStore, mockCache
}

func TestBookingService_Finalize(t *testing.T) {
	t.Run("complete draft becomes a ledger row and resets the draft", func(t *testing.T) {
		svc, mockRepo, mockStore, mockCache := newService(t)

		var inserted model.Booking

		mockStore.EXPECT().
			Get(gomock.Any(), sessionID).
			Return(completeDraft(), true, nil)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				inserted = booking

				return nil
			})

		mockStore.EXPECT().
			Delete(gomock.Any(), sessionID).
			Return(nil)

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Finalize(context.Background(), sessionID)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.NotEmpty(t, inserted.ID)
		assert.Equal(t, "Jakarta", inserted.CityName)
		assert.Equal(t, "Avanza", inserted.CarName)
		assert.Equal(t, 350000, inserted.PricePerDay)
		assert.Equal(t, "Budi", inserted.RenterFirstName)

		assert.Equal(t, inserted.ID, res.ID)
		assert.Equal(t, 3, res.Nights)
		assert.Equal(t, 350000*3, res.Total)
	})

	t.Run("incomplete draft is rejected without touching the ledger", func(t *testing.T) {
		svc, _, mockStore, _ := newService(t)

		draft := completeDraft()
		draft.SelectedCar = nil

		mockStore.EXPECT().
			Get(gomock.Any(), sessionID).
			Return(draft, true, nil)

		_, err := svc.Finalize(context.Background(), sessionID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
		assert.Contains(t, err.Error(), "selected_car")
	})

	t.Run("absent draft is rejected the same way", func(t *testing.T) {
		svc, _, mockStore, _ := newService(t)

		mockStore.EXPECT().
			Get(gomock.Any(), sessionID).
			Return(draftModel.Draft{}, false, nil)

		_, err := svc.Finalize(context.Background(), sessionID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	})

	t.Run("draft store failure propagates", func(t *testing.T) {
		svc, _, mockStore, _ := newService(t)

		mockStore.EXPECT().
			Get(gomock.Any(), sessionID).
			Return(draftModel.Draft{}, false, errors.New("redis down"))

		_, err := svc.Finalize(context.Background(), sessionID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("insert failure propagates and keeps the draft", func(t *testing.T) {
		svc, mockRepo, mockStore, _ := newService(t)

		mockStore.EXPECT().
			Get(gomock.Any(), sessionID).
			Return(completeDraft(), true, nil)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		_, err := svc.Finalize(context.Background(), sessionID)

		assert.Error(t, err)
	})
}

func TestBookingService_GetAll(t *testing.T) {
	t.Run("defaults to insertion order", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cacheMiss).
			Times(2)

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(2, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
				assert.Equal(t, model.FieldBookingDate, params.SortBy)
				assert.Equal(t, gDto.SortDirAsc, params.SortDir)

				return []model.Booking{{ID: "b-1"}, {ID: "b-2"}}, nil
			})

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Len(t, res.Bookings, 2)
		assert.Equal(t, 2, res.TotalData)
	})

	t.Run("search criteria pass through", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newService(t)

		req := bookingDto.SearchBookingsRequest{Search: "jakarta", DateFrom: "2026-09-01"}
		filter := req.ToFilter()

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cacheMiss).
			Times(2)

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), filter).
			Return([]model.Booking{{ID: "b-1", CityName: "Jakarta"}}, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, filter)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Len(t, res.Bookings, 1)
	})
}

func TestBookingService_Remove(t *testing.T) {
	t.Run("existing row removed", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

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

		found, err := svc.Remove(context.Background(), "b-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("missing row is not an error", func(t *testing.T) {
		svc, mockRepo, _, _ := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		found, err := svc.Remove(context.Background(), "missing")

		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		svc, mockRepo, _, _ := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, errors.New("database error"))

		_, err := svc.Remove(context.Background(), "b-1")

		assert.Error(t, err)
	})
}

func TestBookingService_Clear(t *testing.T) {
	svc, mockRepo, _, mockCache := newService(t)

	mockRepo.EXPECT().
		DeleteAll(gomock.Any()).
		Return(nil)

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	err := svc.Clear(context.Background())

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
}

func TestBookingService_Stats(t *testing.T) {
	date := func(value string) time.Time {
		parsed, _ := time.Parse("2006-01-02", value)

		return parsed
	}

	t.Run("aggregates over the full ledger", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cacheMiss)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{
				{ID: "b-1", CityName: "Jakarta", CarName: "Avanza", PricePerDay: 350000, StartDate: date("2026-09-01"), EndDate: date("2026-09-03")},
				{ID: "b-2", CityName: "Bali", CarName: "Avanza", PricePerDay: 500000, StartDate: date("2026-09-05"), EndDate: date("2026-09-05")},
				{ID: "b-3", CityName: "Bali", CarName: "Jazz", PricePerDay: 400000, StartDate: date("2026-09-10"), EndDate: date("2026-09-11")},
			}, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Stats(context.Background())

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, 3, res.TotalBookings)
		assert.Equal(t, 350000*3+500000*1+400000*2, res.TotalRevenue)
		assert.Equal(t, "Bali", res.MostPopularCity)
		assert.Equal(t, "Avanza", res.MostPopularCar)
		assert.Len(t, res.Recent, 3)
		assert.Equal(t, "b-3", res.Recent[0].ID)
		assert.Equal(t, "b-1", res.Recent[2].ID)
	})

	t.Run("empty ledger uses placeholders", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cacheMiss)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{}, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Stats(context.Background())

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Zero(t, res.TotalRevenue)
		assert.Equal(t, bookingDto.PlaceholderNone, res.MostPopularCity)
		assert.Equal(t, bookingDto.PlaceholderNone, res.MostPopularCar)
		assert.Empty(t, res.Recent)
	})
}
