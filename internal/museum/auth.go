package museum

import (
	"context"
	"fmt"
	"time"

	"github.com/Jasch-M/asyncmuseum/internal/logger"
	"github.com/Jasch-M/asyncmuseum/internal/models"
)

type UserDBLayer interface {
	UpsertLogin(ctx context.Context, email, providerID, providerUserID string, displayName *string, at time.Time) (*models.User, error)
}

type TokenIssuer interface {
	Issue(user models.User) (string, error)
}

// AuthService completes the login exchange. The provider token in the
// request is not checked against the provider; whatever identity the
// client asserts is recorded and receives a session token.
type AuthService struct {
	DB     UserDBLayer
	Tokens TokenIssuer
	Logger *logger.Logger
	now    clock
}

func NewAuthService(db UserDBLayer, tokens TokenIssuer, log *logger.Logger) *AuthService {
	return &AuthService{DB: db, Tokens: tokens, Logger: log, now: utcNow}
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.DB.UpsertLogin(ctx, req.Email, req.ProviderID, req.ProviderUserID, req.DisplayName, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	token, err := s.Tokens.Issue(*user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token for user %d: %w", user.ID, err)
	}

	s.Logger.LogSecurity("LOGIN", fmt.Sprintf("user %d signed in via %s", user.ID, user.ProviderID))
	return &models.AuthResponse{Token: token, User: *user}, nil
}
