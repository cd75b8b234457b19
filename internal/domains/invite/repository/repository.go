package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"venuely/infras/otel"
	"venuely/infras/postgres"
	"venuely/internal/domains/invite/model"
	gDto "venuely/shared/dto"
	gRepo "venuely/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Invite interface {
	Insert(ctx context.Context, model model.Invite) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Invite, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Invite, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateAffectedTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) (int64, error)
	GetAllForUser(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.UserInvite, error)
	GetAllForOrganizer(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.OrganizerInvite, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Invite]
	forUser      gRepo.Repository[model.UserInvite]
	forOrganizer gRepo.Repository[model.OrganizerInvite]
}

func New(db *postgres.Connection, otel otel.Otel) Invite {
	return &repositoryImpl{
		Repository:   gRepo.NewRepository[model.Invite](model.EntityName, model.TableName, model.FieldID, db, otel),
		forUser:      gRepo.NewRepository[model.UserInvite](model.EntityName, model.TableName, model.FieldID, db, otel),
		forOrganizer: gRepo.NewRepository[model.OrganizerInvite](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) GetAllForUser(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.UserInvite, error) {
	return r.forUser.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) GetAllForOrganizer(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.OrganizerInvite, error) {
	return r.forOrganizer.GetAll(ctx, params, filter) //nolint:wrapcheck
}
