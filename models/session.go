package models

// User holds the identity fields decoded from the bearer token payload.
// The decode is unverified, so these are display data only; every privileged
// call re-sends the raw token for server-side validation.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session holds the in-memory auth state. It lives for the process only.
type Session struct {
	User            *User  `json:"user"`
	Token           string `json:"token"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}

// LoginRequest is the body for POST /users/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body for POST /users/register
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// AuthResponse is the body returned by the login and register endpoints
type AuthResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}
