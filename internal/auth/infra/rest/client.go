package rest

import (
	"context"

	"github.com/JemilaBekele/mobileforsales-sub000/internal/auth/app"
	"github.com/JemilaBekele/mobileforsales-sub000/pkg/rest"
)

type Client struct {
	api *rest.Client
}

func NewClient(api *rest.Client) *Client {
	return &Client{api: api}
}

type loginRequestDTO struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type loginResponseDTO struct {
	Token string `json:"token"`
	User  struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		FullName string `json:"fullName"`
	} `json:"user"`
}

func (c *Client) Login(ctx context.Context, in app.LoginInput) (app.Session, error) {
	var resp loginResponseDTO
	err := c.api.Post(ctx, "/api/v1/auth/login", loginRequestDTO{
		Identifier: in.Identifier,
		Password:   in.Password,
	}, &resp)
	if err != nil {
		return app.Session{}, err
	}
	return app.Session{
		Token:    resp.Token,
		UserID:   resp.User.ID,
		Username: resp.User.Username,
		FullName: resp.User.FullName,
	}, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.api.Post(ctx, "/api/v1/auth/logout", nil, nil)
}
