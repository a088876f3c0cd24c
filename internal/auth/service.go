package auth

import (
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	userDatamodel "github.com/gestorfin/dre-management/internal/core/datamodel/user"
)

type UserRepository interface {
	GetByEmail(email string) (*userDatamodel.User, error)
	GetByID(userID int64) (*userDatamodel.User, error)
	Create(user *userDatamodel.User) error
}

// Service is the main auth service with dependencies
type Service struct {
	userRepo       UserRepository
	tokenGenerator TokenGenerator
	bcryptCost     int
	logger         *slog.Logger
}

func NewService(userRepo UserRepository, tokenGen TokenGenerator, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		userRepo:       userRepo,
		tokenGenerator: tokenGen,
		bcryptCost:     bcryptCost,
		logger:         logger,
	}
}

func NewJWTTokenGenerator(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *JWTTokenGenerator {
	if accessTTL == 0 {
		accessTTL = 15 * time.Minute
	}
	if refreshTTL == 0 {
		refreshTTL = 24 * 7 * time.Hour
	}
	return &JWTTokenGenerator{
		AccessTokenSecret:  []byte(accessSecret),
		RefreshTokenSecret: []byte(refreshSecret),
		AccessTokenTTL:     accessTTL,
		RefreshTokenTTL:    refreshTTL,
	}
}

// Register creates a user with a hashed password and returns a token pair.
func (s *Service) Register(dto RegisterDTO) (*AuthResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(dto.Email)
	if err == nil && existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	record := &userDatamodel.User{
		Email:        dto.Email,
		Name:         dto.Name,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := s.userRepo.Create(record); err != nil {
		s.logger.Error("failed to create user", "error", err, "email", dto.Email)
		return nil, err
	}

	tokens, err := s.issueTokens(record.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", record.ID)

	return &AuthResponse{
		AuthTokens: tokens,
		User:       User{ID: record.ID, Email: record.Email, Name: record.Name},
	}, nil
}

// Authenticate validates credentials and returns tokens
func (s *Service) Authenticate(dto LoginDTO) (*AuthResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	record, err := s.userRepo.GetByEmail(dto.Email)
	if err != nil || record == nil {
		return nil, ErrInvalidCredentials
	}
	if !record.IsActive {
		return nil, ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(record.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		AuthTokens: tokens,
		User:       User{ID: record.ID, Email: record.Email, Name: record.Name},
	}, nil
}

// RefreshTokens validates the refresh token and returns a new pair
func (s *Service) RefreshTokens(refreshToken string) (AuthTokens, error) {
	claims, err := s.tokenGenerator.ValidateToken(refreshToken)
	if err != nil {
		return AuthTokens{}, err
	}
	return s.issueTokens(claims.UserID)
}

// ValidateAccessToken validates access token and returns claims
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.ValidateToken(tokenString)
}

// CurrentUser loads the authenticated user's profile.
func (s *Service) CurrentUser(userID int64) (*User, error) {
	record, err := s.userRepo.GetByID(userID)
	if err != nil || record == nil {
		return nil, ErrInvalidToken
	}
	if !record.IsActive {
		return nil, ErrUserInactive
	}
	return &User{ID: record.ID, Email: record.Email, Name: record.Name}, nil
}

// VerifyPassword re-checks the user's login password. Entry mutations call
// this before applying changes, a friction control rather than a second
// authentication factor.
func (s *Service) VerifyPassword(userID int64, password string) error {
	if password == "" {
		return ErrInvalidCredentials
	}

	record, err := s.userRepo.GetByID(userID)
	if err != nil || record == nil {
		return ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func (s *Service) issueTokens(userID int64) (AuthTokens, error) {
	accessToken, err := s.tokenGenerator.GenerateAccessToken(userID)
	if err != nil {
		return AuthTokens{}, err
	}

	refreshToken, err := s.tokenGenerator.GenerateRefreshToken(userID)
	if err != nil {
		return AuthTokens{}, err
	}

	return AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
