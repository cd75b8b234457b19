package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"venuely/infras/otel"
	"venuely/infras/postgres"
	"venuely/internal/domains/role/model"
	gDto "venuely/shared/dto"
	gRepo "venuely/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Role interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Role) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Role, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Role]
}

func New(db *postgres.Connection, otel otel.Otel) Role {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Role](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
