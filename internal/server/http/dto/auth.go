package dto

// RegisterRequest describes the sign-up form.
type RegisterRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	FullName string `json:"fullname" form:"fullname"`
	Role     string `json:"role" form:"role"`
}

// LoginRequest describes email/password payload.
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// AuthResponse tells the browser where to go after sign-up or login.
type AuthResponse struct {
	Success  bool   `json:"success"`
	Redirect string `json:"redirect,omitempty"`
	Message  string `json:"message,omitempty"`
}

// UserResponse is the public view of the signed-in account.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// HomeResponse wraps the current user, null when anonymous.
type HomeResponse struct {
	User *UserResponse `json:"user"`
}
