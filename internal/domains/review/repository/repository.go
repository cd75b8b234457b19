package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"venuely/infras/otel"
	"venuely/infras/postgres"
	"venuely/internal/domains/review/model"
	gDto "venuely/shared/dto"
	gRepo "venuely/shared/repository"
)

type Review interface {
	Insert(ctx context.Context, model model.Review) error
	GetAllWithAuthor(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.ReviewWithAuthor, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Review]
	withAuthor gRepo.Repository[model.ReviewWithAuthor]
}

func New(db *postgres.Connection, otel otel.Otel) Review {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Review](model.EntityName, model.TableName, model.FieldID, db, otel),
		withAuthor: gRepo.NewRepository[model.ReviewWithAuthor](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) GetAllWithAuthor(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.ReviewWithAuthor, error) {
	return r.withAuthor.GetAll(ctx, params, filter) //nolint:wrapcheck
}
