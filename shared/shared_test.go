package shared_test

import (
	"testing"
	"time"
	"venuely/shared"
	"venuely/shared/constant"
	"venuely/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "no rows", total: 0, limit: 10, want: 1},
		{name: "partial page", total: 7, limit: 10, want: 1},
		{name: "exact pages", total: 30, limit: 10, want: 3},
		{name: "remainder", total: 31, limit: 10, want: 4},
		{name: "zero limit", total: 31, limit: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateHall struct {
		Name     string  `db:"name"`
		Capacity int     `db:"capacity"`
		Price    *int    `db:"price"`
		Notes    *string `db:"notes"`
		Internal string  `db:"-"`
		Untagged string
	}

	zero := 0

	fields := shared.TransformFields(updateHall{
		Name:     "Crystal Hall",
		Price:    &zero,
		Internal: "skip",
		Untagged: "skip",
	}, "o-1")

	assert.Equal(t, "Crystal Hall", fields["name"])
	assert.Equal(t, &zero, fields["price"])
	assert.NotContains(t, fields, "capacity")
	assert.NotContains(t, fields, "notes")
	assert.NotContains(t, fields, "-")
	assert.NotContains(t, fields, "Untagged")
	assert.Equal(t, "o-1", fields[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, fields[constant.FieldModifiedAt])
	assert.Len(t, fields, 4)
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("h-1", "id", "hotels")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(hotels.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "h-1"}, args)
}

func TestFilterByFields(t *testing.T) {
	filter := shared.FilterByFields("invites", "event_id", "e-1", "organizer_id", "o-1", "dangling")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(invites.event_id = :event_id AND invites.organizer_id = :organizer_id)", where)
	assert.Equal(t, map[string]any{"event_id": "e-1", "organizer_id": "o-1"}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "hotel:get:h-1", shared.BuildCacheKey("hotel:get", "h-1"))
	assert.Equal(t, "dashboard:o-1", shared.BuildCacheKey("dashboard", "", "o-1"))
	assert.Equal(t, "role", shared.BuildCacheKey("role"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: dto.SortDirDesc}
	city := shared.FilterByFields("hotels", "city", "Lahore")

	first := shared.BuildCacheKeyWithQuery("hotel:list", params, city)
	second := shared.BuildCacheKeyWithQuery("hotel:list", params, shared.FilterByFields("hotels", "city", "Lahore"))
	otherCity := shared.BuildCacheKeyWithQuery("hotel:list", params, shared.FilterByFields("hotels", "city", "Karachi"))

	params.Page = 2
	otherPage := shared.BuildCacheKeyWithQuery("hotel:list", params, city)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, otherCity)
	assert.NotEqual(t, first, otherPage)
	assert.Regexp(t, `^hotel:list:[0-9a-f]{16}$`, first)
}
