package dto

import (
	"context"

	"roomapi/infras/jwt"
)

// CurrentUserResponse is the identity carried by the caller's access token.
type CurrentUserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// FromContext reads the claims stored by the auth middleware. It reports false for anonymous requests.
func (r *CurrentUserResponse) FromContext(ctx context.Context) bool {
	claims, ok := jwt.FromContext(ctx)
	if !ok {
		return false
	}

	r.ID = claims.UserID
	r.Email = claims.Email
	r.Role = claims.Role

	return true
}
