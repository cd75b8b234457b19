package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"venuely/config"
	"venuely/internal/session"
	"venuely/internal/session/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRoleResolver_ResolveRole(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(source *mocks.MockRoleSource)
		want      session.Role
	}{
		{
			name: "organizer",
			setupMock: func(source *mocks.MockRoleSource) {
				source.EXPECT().FetchRole(gomock.Any(), "acc-1").Return("organizer", true, nil)
			},
			want: session.RoleOrganizer,
		},
		{
			name: "user",
			setupMock: func(source *mocks.MockRoleSource) {
				source.EXPECT().FetchRole(gomock.Any(), "acc-1").Return("user", true, nil)
			},
			want: session.RoleUser,
		},
		{
			name: "no record",
			setupMock: func(source *mocks.MockRoleSource) {
				source.EXPECT().FetchRole(gomock.Any(), "acc-1").Return("", false, nil)
			},
			want: session.RoleUser,
		},
		{
			name: "lookup error",
			setupMock: func(source *mocks.MockRoleSource) {
				source.EXPECT().FetchRole(gomock.Any(), "acc-1").Return("", false, errors.New("db down"))
			},
			want: session.RoleUser,
		},
		{
			name: "unknown value",
			setupMock: func(source *mocks.MockRoleSource) {
				source.EXPECT().FetchRole(gomock.Any(), "acc-1").Return("admin", true, nil)
			},
			want: session.RoleUser,
		},
		{
			name: "timeout",
			setupMock: func(source *mocks.MockRoleSource) {
				source.EXPECT().FetchRole(gomock.Any(), "acc-1").DoAndReturn(
					func(ctx context.Context, _ string) (string, bool, error) {
						<-ctx.Done()

						return "organizer", true, nil
					},
				)
			},
			want: session.RoleUser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			source := mocks.NewMockRoleSource(ctrl)
			tt.setupMock(source)

			resolver := session.NewRoleResolverWithTimeout(source, 20*time.Millisecond)

			assert.Equal(t, tt.want, resolver.ResolveRole(context.Background(), "acc-1"))
		})
	}
}

func TestNewRoleResolver_DefaultTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockRoleSource(ctrl)
	source.EXPECT().FetchRole(gomock.Any(), "acc-1").Return("organizer", true, nil)

	cfg := &config.Config{}
	resolver := session.NewRoleResolver(source, cfg)

	assert.Equal(t, session.RoleOrganizer, resolver.ResolveRole(context.Background(), "acc-1"))
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, session.RoleUser.Valid())
	assert.True(t, session.RoleOrganizer.Valid())
	assert.False(t, session.Role("").Valid())
	assert.False(t, session.Role("admin").Valid())
}
