package dto

import (
	"venuely/internal/domains/role/model"
	gModel "venuely/shared/model"
	"venuely/shared/timezone"

	"github.com/google/uuid"
)

type RoleResponse struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

func (r *RoleResponse) FromModel(model model.Role) {
	r.UserID = model.UserID
	r.Role = model.Role
}

func NewRole(userID, role, actor string) model.Role {
	return model.Role{
		ID:     uuid.NewString(),
		UserID: userID,
		Role:   role,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}
