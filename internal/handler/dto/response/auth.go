package response

import (
	"restaurant-api/internal/usecase/commands"
	"restaurant-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type AuthResponse struct {
	UserID uuid.UUID `json:"userId"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	Token  string    `json:"token"`
}

func FromAuthResult(result *commands.AuthResult) *AuthResponse {
	return &AuthResponse{
		UserID: result.UserID,
		Name:   result.Name,
		Email:  result.Email,
		Role:   result.Role,
		Token:  result.Token,
	}
}

type CurrentUserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

func FromAuthorizedUserView(view *queries.AuthorizedUserView) *CurrentUserResponse {
	return &CurrentUserResponse{
		ID:    view.ID,
		Name:  view.Name,
		Email: view.Email,
		Role:  view.Role,
	}
}
