package dto

// RegisterRequest creates a new user account.
type RegisterRequest struct {
	Username     string  `json:"username" binding:"required,min=3,max=64"`
	Password     string  `json:"password" binding:"required,min=6"`
	Email        string  `json:"email" binding:"required,email"`
	FullName     string  `json:"fullName" binding:"required"`
	Role         string  `json:"role" binding:"required,oneof=admin faculty accountant"`
	ProfileImage *string `json:"profileImage"`
}

// LoginRequest authenticates by username and password.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest exchanges a refresh token for a new token pair.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse carries an issued token pair.
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"`
	TokenType    string `json:"tokenType"`
}

// UpdateUserRequest patches a user profile. Present fields are validated with
// the same rules as registration.
type UpdateUserRequest struct {
	Password     *string `json:"password" binding:"omitempty,min=6"`
	Email        *string `json:"email" binding:"omitempty,email"`
	FullName     *string `json:"fullName"`
	Role         *string `json:"role" binding:"omitempty,oneof=admin faculty accountant"`
	ProfileImage *string `json:"profileImage"`
}
