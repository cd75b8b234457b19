package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"venuely/infras/otel"
	"venuely/infras/postgres"
	"venuely/internal/domains/favorite/model"
	gDto "venuely/shared/dto"
	gRepo "venuely/shared/repository"
)

type Favorite interface {
	Insert(ctx context.Context, model model.Favorite) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Favorite, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetAllWithEvent(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.FavoriteEvent, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Favorite]
	withEvent gRepo.Repository[model.FavoriteEvent]
}

func New(db *postgres.Connection, otel otel.Otel) Favorite {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Favorite](model.EntityName, model.TableName, model.FieldID, db, otel),
		withEvent:  gRepo.NewRepository[model.FavoriteEvent](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) GetAllWithEvent(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.FavoriteEvent, error) {
	return r.withEvent.GetAll(ctx, params, filter) //nolint:wrapcheck
}
