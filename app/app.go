package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/Chetanya2001/zip-mobility-solutions-sub000/backend"
	"github.com/Chetanya2001/zip-mobility-solutions-sub000/config"
	"github.com/Chetanya2001/zip-mobility-solutions-sub000/models"
	"github.com/Chetanya2001/zip-mobility-solutions-sub000/store"
)

// App stores the backend clients and application state, so it can be reused
// across screens
type App struct {
	Config config.Config

	Users    backend.UserAPI
	Cars     backend.CarAPI
	Bookings backend.BookingAPI
	Docs     backend.DocumentAPI
	Service  backend.ServiceAPI

	Auth        *store.AuthStore
	Eligibility *store.EligibilityStore
	Search      *store.SearchStore
	Booking     *store.BookingStore

	Gate *Gate
}

// Initialize wires the backend caller, the typed API clients, the stores,
// and the auth-to-eligibility side effect
func (a *App) Initialize() {
	caller := backend.New(&a.Config, func() string { return a.Auth.Token() })

	a.Users = backend.NewUserAPI(caller)
	a.Cars = backend.NewCarAPI(caller)
	a.Bookings = backend.NewBookingAPI(caller)
	a.Docs = backend.NewDocumentAPI(caller)
	a.Service = backend.NewServiceAPI(caller)

	a.Eligibility = store.NewEligibilityStore(a.Docs)
	a.Search = store.NewSearchStore(a.Cars)
	a.Booking = store.NewBookingStore(a.Bookings)
	a.Gate = &Gate{Auth: a.Auth, Eligibility: a.Eligibility}

	// entering the authenticated state triggers an eligibility re-check
	a.Auth.OnAuthenticated(func() {
		go a.Eligibility.Check(context.Background())
	})
}

// Login signs the user in and populates the session from the token payload
func (a *App) Login(ctx context.Context, email, password string) error {
	resp, err := a.Users.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}
	return a.adoptToken(resp.Token)
}

// Register signs the user up and populates the session from the token payload
func (a *App) Register(ctx context.Context, req models.RegisterRequest) error {
	resp, err := a.Users.Register(ctx, req)
	if err != nil {
		return err
	}
	return a.adoptToken(resp.Token)
}

// Logout clears the session and the cached eligibility decision
func (a *App) Logout() {
	a.Auth.Logout()
	a.Eligibility.Reset()
	zap.S().Infow("user logged out")
}

func (a *App) adoptToken(token string) error {
	user, err := store.UserFromToken(token)
	if err != nil {
		return err
	}
	a.Auth.SetAuthData(user, token)
	zap.S().Infow("session established",
		"user_id", user.ID,
		"role", user.Role)
	return nil
}
