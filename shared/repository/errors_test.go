package repository_test

import (
	"errors"
	"fmt"
	"testing"

	"venuely/shared/repository"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "unique violation",
			err:  &pq.Error{Code: "23505"},
			want: true,
		},
		{
			name: "wrapped unique violation",
			err:  fmt.Errorf("failed to insert data (invite): %w", &pq.Error{Code: "23505"}),
			want: true,
		},
		{
			name: "foreign key violation",
			err:  &pq.Error{Code: "23503"},
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: false,
		},
		{
			name: "nil",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repository.IsUniqueViolation(tt.err))
		})
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, repository.IsForeignKeyViolation(&pq.Error{Code: "23503"}))
	assert.False(t, repository.IsForeignKeyViolation(&pq.Error{Code: "23505"}))
}
