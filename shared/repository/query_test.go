package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	otelMocks "venuely/infras/otel/mocks"
	inviteModel "venuely/internal/domains/invite/model"
	inviteDto "venuely/internal/domains/invite/model/dto"
	"venuely/shared"
	gDto "venuely/shared/dto"
)

type recordingExec struct {
	query    string
	args     map[string]any
	affected int64
}

func (e *recordingExec) NamedExecContext(_ context.Context, query string, arg any) (sql.Result, error) {
	e.query = query
	e.args, _ = arg.(map[string]any)

	return driver.RowsAffected(e.affected), nil
}

func TestUpdate_GuardsPendingInvite(t *testing.T) {
	repo := NewRepository[inviteModel.Invite](inviteModel.EntityName, inviteModel.TableName, inviteModel.FieldID, nil, otelMocks.NewOtel())
	exec := &recordingExec{affected: 1}

	fields := shared.TransformFields(inviteDto.StatusFields{Status: inviteModel.StatusAccepted}, "u-1")

	affected, err := repo.update(context.Background(), exec, "UpdateAffectedTx", fields, inviteModel.PendingFilter("i-1", "u-1"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	assert.Equal(t,
		"UPDATE invites SET modified_at = :modified_at, modified_by = :modified_by, status = :status "+
			"WHERE (invites.id = :id AND invites.user_id = :user_id AND invites.status = :current_status)",
		exec.query)

	assert.Equal(t, "i-1", exec.args["id"])
	assert.Equal(t, "u-1", exec.args["user_id"])
	assert.Equal(t, inviteModel.StatusPending, exec.args["current_status"])
	assert.Equal(t, inviteModel.StatusAccepted, exec.args["status"])
	assert.Equal(t, "u-1", exec.args["modified_by"])
	assert.Contains(t, exec.args, "modified_at")
}

func TestUpdate_RequiresFilter(t *testing.T) {
	repo := NewRepository[inviteModel.Invite](inviteModel.EntityName, inviteModel.TableName, inviteModel.FieldID, nil, otelMocks.NewOtel())
	exec := &recordingExec{}

	_, err := repo.update(context.Background(), exec, "UpdateAffectedTx", map[string]any{"status": "accepted"}, gDto.FilterGroup{})

	assert.ErrorIs(t, err, errRequiredFilter)
	assert.Empty(t, exec.query)
}

func TestListQuery_OrganizerInviteJoinsProfileOnlyWhenAccepted(t *testing.T) {
	repo := NewRepository[inviteModel.OrganizerInvite](inviteModel.EntityName, inviteModel.TableName, inviteModel.FieldID, nil, otelMocks.NewOtel())

	params := gDto.QueryParams{SortBy: "invites.created_at", SortDir: gDto.SortDirDesc}

	query, args := repo.listQuery(params, shared.FilterByFields(inviteModel.TableName, inviteModel.FieldOrganizerID, "o-1"), nil)

	assert.Equal(t,
		"SELECT invites.id, invites.event_id, invites.hotel_id, invites.organizer_id, invites.user_id, "+
			"invites.message, invites.status, invites.created_at, invites.modified_at, invites.created_by, invites.modified_by, "+
			"hotels.name AS hotel_name, events.event_name AS event_name, events.event_type AS event_type, "+
			"events.event_date AS event_date, events.guest_count AS guest_count, events.location AS location, "+
			"profiles.full_name AS recipient_name, profiles.email AS recipient_email, "+
			"profiles.phone AS recipient_phone, profiles.address AS recipient_address "+
			"FROM invites "+
			"JOIN hotels ON hotels.id = invites.hotel_id "+
			"JOIN events ON events.id = invites.event_id "+
			"LEFT JOIN profiles ON profiles.id = invites.user_id AND invites.status = 'accepted' "+
			"WHERE (invites.organizer_id = :organizer_id) ORDER BY invites.created_at DESC",
		query)

	assert.Equal(t, map[string]any{"organizer_id": "o-1"}, args)
}

func TestGetColumns_JoinedFieldsAreNeverInserted(t *testing.T) {
	repo := NewRepository[inviteModel.OrganizerInvite](inviteModel.EntityName, inviteModel.TableName, inviteModel.FieldID, nil, otelMocks.NewOtel())

	assert.Equal(t, []string{
		"id", "event_id", "hotel_id", "organizer_id", "user_id", "message", "status",
		"created_at", "modified_at", "created_by", "modified_by",
	}, repo.insertColumns)
}

func TestListQuery_Pagination(t *testing.T) {
	repo := NewRepository[inviteModel.Invite](inviteModel.EntityName, inviteModel.TableName, inviteModel.FieldID, nil, otelMocks.NewOtel())

	query, args := repo.listQuery(gDto.QueryParams{Page: 3, Limit: 10}, gDto.FilterGroup{}, []string{inviteModel.FieldEventID})

	assert.Equal(t, "SELECT invites.event_id FROM invites   LIMIT :limit OFFSET :offset", query)
	assert.Equal(t, 10, args["limit"])
	assert.Equal(t, 20, args["offset"])
}
