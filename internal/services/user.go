package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/smarino-dev/tienda-api/internal/errors"
	"github.com/smarino-dev/tienda-api/internal/models"
	repository "github.com/smarino-dev/tienda-api/internal/repositories"
)

// bcryptCost matches the original platform's work factor.
const bcryptCost = 10

// LoginRateLimiter is the sliding-window limiter consulted before every
// credential check.
type LoginRateLimiter interface {
	CheckLoginRateLimit(ctx context.Context, email string) (allowed bool, remaining, retryAfter int, err error)
}

// WelcomeEmailSender delivers the post-registration email. Implementations
// may be no-ops when email is not configured.
type WelcomeEmailSender interface {
	SendWelcome(ctx context.Context, toEmail, name string) error
}

type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

type userService struct {
	repo      repository.UserRepository
	limiter   LoginRateLimiter
	emails    WelcomeEmailSender
	jwtKey    []byte
	jwtExpiry time.Duration
}

func NewUserService(repo repository.UserRepository, limiter LoginRateLimiter, emails WelcomeEmailSender, jwtKey []byte, jwtExpiry time.Duration) UserService {
	return &userService{
		repo:      repo,
		limiter:   limiter,
		emails:    emails,
		jwtKey:    jwtKey,
		jwtExpiry: jwtExpiry,
	}
}

func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error) {
	existingUser, _ := s.repo.GetUserByEmail(ctx, req.Email)
	if existingUser != nil {
		return nil, errors.DuplicateEntryError("User already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, errors.InternalError("Failed to secure password").WithError(err)
	}

	// The public endpoint never assigns elevated roles.
	user := &models.User{
		UserName: req.UserName,
		LastName: req.LastName,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     models.RoleClient,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, errors.DatabaseError("Failed to create user").WithError(err)
	}

	if s.emails != nil {
		go s.sendWelcomeEmail(user.Email, user.UserName)
	}

	return &models.RegisterResponse{Message: "User created successfully"}, nil
}

func (s *userService) sendWelcomeEmail(email, name string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.emails.SendWelcome(ctx, email, name); err != nil {
		slog.Warn("Failed to send welcome email", slog.String("error", err.Error()))
	}
}

func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if s.limiter != nil {
		allowed, _, _, err := s.limiter.CheckLoginRateLimit(ctx, req.Email)
		if err != nil {
			return nil, errors.ThirdPartyError("Rate limit check failed").WithError(err)
		}

		if !allowed {
			return nil, errors.TooManyRequestsError("Too many login attempts. Please try again later.")
		}
	}

	// Unknown email and wrong password answer identically so the endpoint
	// cannot be used to enumerate accounts.
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, errors.UnauthorizedError("Invalid email or password")
	}

	claims := &models.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.jwtExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return nil, errors.InternalError("Failed to generate authentication token").WithError(err)
	}

	return &models.LoginResponse{Message: "Login successful", Token: tokenString}, nil
}

func (s *userService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("User not found").WithError(err)
	}

	return user, nil
}
