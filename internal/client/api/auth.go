package api

import (
	"context"
	"net/http"

	"github.com/mribeiro/bibliocli/internal/client/models"
)

// Login exchanges credentials for a token and the user's identity.
// Older backend builds omit the role field in the response; it defaults
// to MEMBRO so the rest of the client always sees a role.
func (c *Client) Login(ctx context.Context, email, senha string) (models.AuthResponse, error) {
	data, err := c.do(ctx, http.MethodPost, "/auth/login", nil, models.LoginRequest{Email: email, Senha: senha})
	if err != nil {
		return models.AuthResponse{}, err
	}
	resp, err := decode[models.AuthResponse](data)
	if err != nil {
		return models.AuthResponse{}, err
	}
	if resp.Role == "" {
		resp.Role = models.RoleMember
	}
	return resp, nil
}

// RegisterUser creates a new account. A duplicate email surfaces as a
// conflict with the backend's message.
func (c *Client) RegisterUser(ctx context.Context, req models.RegisterRequest) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/register", nil, req)
	return err
}
