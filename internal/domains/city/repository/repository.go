package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"kiraya/infras/otel"
	"kiraya/infras/postgres"
	"kiraya/internal/domains/city/model"
	gDto "kiraya/shared/dto"
	gRepo "kiraya/shared/repository"
)

type City interface {
	Insert(ctx context.Context, model model.City) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.City, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.City, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.City]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) City {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.City](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
