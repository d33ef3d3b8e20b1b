package response

import "github.com/kasirgo/pos-api/internal/domain"

type LoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    domain.User `json:"user"`
}
