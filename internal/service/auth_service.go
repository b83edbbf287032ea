package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"bloglist/internal/config"
	"bloglist/internal/models"
	"bloglist/internal/observability"
	"bloglist/internal/repository"
	"bloglist/internal/validation"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenIssuer   = "bloglist-api"
	tokenAudience = "bloglist-client"
)

// invalidCredentialsMessage is returned for both unknown usernames and wrong
// passwords so callers cannot probe which accounts exist.
const invalidCredentialsMessage = "invalid username or password"

// AuthService registers users and issues signed, time-bound tokens.
type AuthService struct {
	userRepo repository.UserRepository
	config   *config.Config
}

// NewAuthService returns a new AuthService.
func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{userRepo: userRepo, config: cfg}
}

// RegisterInput holds the fields of a registration request.
type RegisterInput struct {
	Username string
	Name     string
	Password string
}

// Register validates the password policy and username, hashes the password,
// and persists the new user with no owned blogs.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username: in.Username,
		Name:     in.Name,
		Password: string(hashedPassword),
	}

	// The unique index is the authority on username uniqueness; the
	// repository maps violations to a ConflictError with the contract
	// message.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate verifies the credentials and returns a signed token together
// with the user. Unknown user and wrong password produce identical errors.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		observability.AuthFailuresTotal.WithLabelValues("credentials").Inc()
		return "", nil, models.NewUnauthorizedError(invalidCredentialsMessage)
	}

	if cmpErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); cmpErr != nil {
		observability.AuthFailuresTotal.WithLabelValues("credentials").Inc()
		return "", nil, models.NewUnauthorizedError(invalidCredentialsMessage)
	}

	token, err := s.GenerateToken(user.ID, user.Username)
	if err != nil {
		return "", nil, models.NewInternalError(err)
	}

	return token, user, nil
}

// GenerateToken creates a signed JWT binding the user's ID and username with
// the configured expiry.
func (s *AuthService) GenerateToken(userID uint, username string) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	ttl := time.Duration(s.config.TokenTTLMinutes) * time.Minute
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(userID), 10),
		"username": username,
		"iss":      tokenIssuer,
		"aud":      tokenAudience,
		"exp":      now.Add(ttl).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
		"jti":      uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}
