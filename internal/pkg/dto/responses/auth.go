package responses

import "hospital-service/internal/pkg/models"

type LoginResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token,omitempty"`
}
