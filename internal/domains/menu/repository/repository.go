package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"venuely/infras/otel"
	"venuely/infras/postgres"
	"venuely/internal/domains/menu/model"
	gDto "venuely/shared/dto"
	gRepo "venuely/shared/repository"
)

type MenuBundle interface {
	Insert(ctx context.Context, model model.MenuBundle) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.MenuBundle, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.MenuBundle, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.MenuBundle]
}

func New(db *postgres.Connection, otel otel.Otel) MenuBundle {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.MenuBundle](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
