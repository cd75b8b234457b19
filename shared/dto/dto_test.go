package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"
	"venuely/shared/constant"
	"venuely/shared/dto"
	"venuely/shared/model"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	var metadata dto.Metadata
	metadata.FromModel(model.Metadata{
		CreatedAt:  created,
		ModifiedAt: created.Add(time.Hour),
		CreatedBy:  "u-1",
		ModifiedBy: "o-1",
	})

	parsedCreated, err := time.Parse(constant.DateFormat, metadata.CreatedAt)
	assert.NoError(t, err)
	assert.True(t, created.Equal(parsedCreated))

	parsedModified, err := time.Parse(constant.DateFormat, metadata.ModifiedAt)
	assert.NoError(t, err)
	assert.True(t, created.Add(time.Hour).Equal(parsedModified))

	assert.Equal(t, "u-1", metadata.CreatedBy)
	assert.Equal(t, "o-1", metadata.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		withDefaults bool
		want         dto.QueryParams
	}{
		{
			name:  "all parameters",
			query: "page=2&limit=20&sort_by=event_date&sort_dir=asc",
			want:  dto.QueryParams{Page: 2, Limit: 20, SortBy: "event_date", SortDir: dto.SortDirAsc},
		},
		{
			name:         "defaults",
			withDefaults: true,
			want:         dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name: "no defaults",
			want: dto.QueryParams{},
		},
		{
			name:         "malformed numbers fall back",
			query:        "page=abc&limit=-5",
			withDefaults: true,
			want:         dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:  "limit is capped",
			query: "limit=5000",
			want:  dto.QueryParams{Limit: constant.MaxValueLimit},
		},
		{
			name:  "unknown direction ignored",
			query: "sort_dir=sideways",
			want:  dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var params dto.QueryParams
			params.FromRequest(httptest.NewRequest("GET", "/v1/events/open?"+tt.query, nil), tt.withDefaults)

			assert.Equal(t, tt.want, params)
		})
	}
}

func TestQueryParams_Offset(t *testing.T) {
	assert.Equal(t, 0, (&dto.QueryParams{Page: 1, Limit: 10}).Offset())
	assert.Equal(t, 20, (&dto.QueryParams{Page: 3, Limit: 10}).Offset())
	assert.Equal(t, 0, (&dto.QueryParams{Page: 3}).Offset())
	assert.Equal(t, 0, (&dto.QueryParams{}).Offset())
}

func TestQueryParams_RestrictSort(t *testing.T) {
	tests := []struct {
		name   string
		params dto.QueryParams
		want   dto.QueryParams
	}{
		{
			name:   "allowed column keeps direction",
			params: dto.QueryParams{SortBy: "event_date", SortDir: dto.SortDirAsc},
			want:   dto.QueryParams{SortBy: "event_date", SortDir: dto.SortDirAsc},
		},
		{
			name:   "unknown column falls back",
			params: dto.QueryParams{SortBy: "password; DROP TABLE users", SortDir: dto.SortDirAsc},
			want:   dto.QueryParams{SortBy: constant.DefaultValueSortBy, SortDir: dto.SortDirDesc},
		},
		{
			name:   "missing direction defaults to descending",
			params: dto.QueryParams{SortBy: "event_date"},
			want:   dto.QueryParams{SortBy: "event_date", SortDir: dto.SortDirDesc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := tt.params
			params.RestrictSort("created_at", "event_date")

			assert.Equal(t, tt.want, params)
		})
	}
}
