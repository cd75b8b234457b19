package validator_test

import (
	"strings"
	"testing"
	"venuely/shared/failure"
	"venuely/shared/validator"

	"github.com/stretchr/testify/assert"
)

type inviteRequest struct {
	EventID string `json:"event_id" validate:"required,uuid"`
	Email   string `json:"email"    validate:"required,email"`
	Guests  int    `json:"guests"   validate:"gte=1,lte=5000"`
	Status  string `json:"status"   validate:"oneof=pending accepted rejected"`
	Message string `json:"message"  validate:"omitempty,notblank,max=500"`
}

func validInvite() inviteRequest {
	return inviteRequest{
		EventID: "0b5d7a36-2a5b-4c56-a0e2-6f3c2f6a8f11",
		Email:   "host@example.com",
		Guests:  150,
		Status:  "pending",
		Message: "We'd love to host your event",
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(req *inviteRequest)
		expectError string
	}{
		{
			name:   "valid struct",
			mutate: func(*inviteRequest) {},
		},
		{
			name:        "missing required field",
			mutate:      func(req *inviteRequest) { req.EventID = "" },
			expectError: "event_id is required",
		},
		{
			name:        "invalid uuid",
			mutate:      func(req *inviteRequest) { req.EventID = "not-a-uuid" },
			expectError: "event_id must be a valid UUID",
		},
		{
			name:        "invalid email",
			mutate:      func(req *inviteRequest) { req.Email = "invalid-email" },
			expectError: "email must be a valid email address",
		},
		{
			name:        "guest count out of range",
			mutate:      func(req *inviteRequest) { req.Guests = 0 },
			expectError: "guests must be greater than or equal to 1",
		},
		{
			name:        "invalid status",
			mutate:      func(req *inviteRequest) { req.Status = "maybe" },
			expectError: "status must be one of pending accepted rejected",
		},
		{
			name:        "blank message",
			mutate:      func(req *inviteRequest) { req.Message = "   " },
			expectError: "message must not be blank",
		},
		{
			name:        "message too long",
			mutate:      func(req *inviteRequest) { req.Message = strings.Repeat("a", 501) },
			expectError: "message must be at most 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validInvite()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.expectError == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.expectError)
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "valid required string", field: "test", tag: "required"},
		{name: "empty required string", field: "", tag: "required", expectError: true},
		{name: "valid email", field: "test@example.com", tag: "email"},
		{name: "invalid email", field: "invalid-email", tag: "email", expectError: true},
		{name: "rating in range", field: 4, tag: "gte=1,lte=5"},
		{name: "rating out of range", field: 6, tag: "gte=1,lte=5", expectError: true},
		{name: "valid role", field: "organizer", tag: "oneof=user organizer"},
		{name: "invalid role", field: "admin", tag: "oneof=user organizer", expectError: true},
		{name: "not blank", field: "hello", tag: "notblank"},
		{name: "blank", field: " \t", tag: "notblank", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:     "valid JSON",
			jsonBody: `{"event_id":"0b5d7a36-2a5b-4c56-a0e2-6f3c2f6a8f11","email":"host@example.com","guests":20,"status":"pending"}`,
		},
		{
			name:        "invalid field",
			jsonBody:    `{"event_id":"0b5d7a36-2a5b-4c56-a0e2-6f3c2f6a8f11","email":"invalid","guests":20,"status":"pending"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"event_id":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
		{
			name:        "no body",
			jsonBody:    ``,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data inviteRequest

			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if !tt.expectError {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.Equal(t, 400, failure.GetCode(err))
		})
	}
}

func TestValidateID(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		expectError string
	}{
		{name: "uuid", id: "0b5d7a36-2a5b-4c56-a0e2-6f3c2f6a8f11"},
		{name: "empty", id: "", expectError: "hotel_id is required"},
		{name: "not a uuid", id: "h-1", expectError: "hotel_id must be a valid UUID"},
		{name: "sql fragment", id: "1 OR 1=1", expectError: "hotel_id must be a valid UUID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateID("hotel_id", tt.id)

			if tt.expectError == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.expectError)
			assert.Equal(t, 400, failure.GetCode(err))
		})
	}
}
