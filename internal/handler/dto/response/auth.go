package response

import (
	"ambassador-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoginResponse struct {
	UserID uuid.UUID `json:"userId"`
}

type MeResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

func FromAuthorizedUserView(rm *queries.AuthorizedUserView) *MeResponse {
	return &MeResponse{
		ID:    rm.ID,
		Email: rm.Email,
		Role:  rm.Role,
	}
}
