package models

// LoginRequest carries an identity asserted by the client after it signed
// in with a third-party provider. Token is the provider's token; it is
// accepted as-is.
type LoginRequest struct {
	Token          string  `json:"token" validate:"required"`
	Email          string  `json:"email" validate:"required,max=255"`
	DisplayName    *string `json:"displayName,omitempty" validate:"omitempty,max=255"`
	ProviderID     string  `json:"providerId" validate:"required,max=50"`
	ProviderUserID string  `json:"providerUserId" validate:"required,max=255"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
