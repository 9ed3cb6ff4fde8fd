package models

// Registration is the body of POST /api/User/register.
type Registration struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     Role   `json:"role" validate:"required,oneof=Employee Admin"`
	Location string `json:"location"`
}

// Credentials is the body of POST /api/User/login.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is what the backend answers a successful login with.
type LoginResponse struct {
	Token string `json:"token" validate:"required"`
	User  *User  `json:"user,omitempty"`
}
