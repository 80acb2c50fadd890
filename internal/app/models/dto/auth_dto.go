package dto

// LoginRequest represents a login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"ada.lovelace"`
	Password string `json:"password" binding:"required" example:"Password123"`
}

// RefreshTokenRequest represents a token refresh payload
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required" example:"8a9b0c1d-2e3f-4a5b-8c9d-0e1f2a3b4c5d"`
}

// TokenResponse represents an issued token pair
type TokenResponse struct {
	AccessToken      string          `json:"accessToken"`
	TokenType        string          `json:"tokenType" example:"Bearer"`
	ExpiresIn        int             `json:"expiresIn" example:"3600"`
	RefreshToken     string          `json:"refreshToken"`
	RefreshExpiresIn int             `json:"refreshExpiresIn" example:"2592000"`
	Student          StudentResponse `json:"student"`
}
