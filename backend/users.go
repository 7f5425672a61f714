package backend

//go generate: mockery --name UserAPI

import (
	"context"

	"github.com/Chetanya2001/zip-mobility-solutions-sub000/models"
)

// UserAPI contains the auth endpoints. Both return a bearer token whose
// payload the client decodes locally for display.
type UserAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
}

type userAPI struct {
	c Caller
}

// NewUserAPI initializes a new instance of the user client with the provided caller
func NewUserAPI(c Caller) UserAPI {
	return &userAPI{c: c}
}

func (a *userAPI) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := a.c.PostJSON(ctx, "/users/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *userAPI) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := a.c.PostJSON(ctx, "/users/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
