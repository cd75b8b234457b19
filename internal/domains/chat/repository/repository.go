package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"venuely/infras/otel"
	"venuely/infras/postgres"
	"venuely/internal/domains/chat/model"
	gDto "venuely/shared/dto"
	gRepo "venuely/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Chat interface {
	InsertIgnoreConflictTx(ctx context.Context, sqltx *sqlx.Tx, model model.Chat, conflictColumns ...string) (bool, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Chat, error)
	GetAllForUser(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.UserChat, error)
	GetAllForOrganizer(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.OrganizerChat, error)
}

type Message interface {
	Insert(ctx context.Context, model model.Message) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Message, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateAffected(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
}

type chatRepositoryImpl struct {
	gRepo.Repository[model.Chat]
	forUser      gRepo.Repository[model.UserChat]
	forOrganizer gRepo.Repository[model.OrganizerChat]
}

func New(db *postgres.Connection, otel otel.Otel) Chat {
	return &chatRepositoryImpl{
		Repository:   gRepo.NewRepository[model.Chat](model.EntityName, model.TableName, model.FieldID, db, otel),
		forUser:      gRepo.NewRepository[model.UserChat](model.EntityName, model.TableName, model.FieldID, db, otel),
		forOrganizer: gRepo.NewRepository[model.OrganizerChat](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (r *chatRepositoryImpl) GetAllForUser(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.UserChat, error) {
	return r.forUser.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *chatRepositoryImpl) GetAllForOrganizer(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.OrganizerChat, error) {
	return r.forOrganizer.GetAll(ctx, params, filter) //nolint:wrapcheck
}

type messageRepositoryImpl struct {
	gRepo.Repository[model.Message]
}

func NewMessage(db *postgres.Connection, otel otel.Otel) Message {
	return &messageRepositoryImpl{
		Repository: gRepo.NewRepository[model.Message](model.MessageEntityName, model.MessageTableName, model.FieldMessageID, db, otel),
	}
}
