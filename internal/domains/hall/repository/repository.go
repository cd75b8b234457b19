package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"venuely/infras/otel"
	"venuely/infras/postgres"
	"venuely/internal/domains/hall/model"
	gDto "venuely/shared/dto"
	gRepo "venuely/shared/repository"
)

type Hall interface {
	Insert(ctx context.Context, model model.Hall) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Hall, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Hall, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Hall]
}

func New(db *postgres.Connection, otel otel.Otel) Hall {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Hall](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
