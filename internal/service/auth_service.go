package service

import (
	"context"
	"time"

	"degrondvraag-be/internal/config"
	"degrondvraag-be/internal/dto"
	"degrondvraag-be/internal/entity"
	"degrondvraag-be/internal/pkg/logger"
	"degrondvraag-be/internal/repository/specification"
	"degrondvraag-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	// AnonymousSignIn establishes an ephemeral visitor identity. Always
	// attempted at app start; grants read/comment/vote/chat, never admin.
	AnonymousSignIn(ctx context.Context) (*dto.SessionResponse, error)
	// AdminLogin fails with one fixed message whatever the cause; the real
	// cause is only logged server-side.
	AdminLogin(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	cfg        *config.Config
	logger     logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, cfg *config.Config, logger logger.ILogger) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		cfg:        cfg,
		logger:     logger,
	}
}

func (s *authService) AnonymousSignIn(ctx context.Context) (*dto.SessionResponse, error) {
	user := &entity.User{
		Id:        uuid.New(),
		Role:      entity.UserRoleVisitor,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.SessionResponse{
		UserId: user.Id,
		Role:   string(user.Role),
		Token:  token,
	}, nil
}

func (s *authService) AdminLogin(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		s.logger.Error("Auth", "Admin login lookup failed", map[string]interface{}{"error": err.Error()})
		return nil, ErrInvalidCredentials
	}
	if user == nil || user.PasswordHash == nil {
		s.logger.Warn("Auth", "Admin login for unknown account", map[string]interface{}{"email": req.Email})
		return nil, ErrInvalidCredentials
	}
	if !user.IsAdmin() {
		s.logger.Warn("Auth", "Login attempt by non-admin identity", map[string]interface{}{"user_id": user.Id})
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Auth", "Admin login with wrong password", map[string]interface{}{"user_id": user.Id})
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		s.logger.Error("Auth", "Token generation failed", map[string]interface{}{"error": err.Error()})
		return nil, ErrInvalidCredentials
	}

	return &dto.SessionResponse{
		UserId: user.Id,
		Role:   string(user.Role),
		Token:  token,
	}, nil
}

func (s *authService) generateToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"role":    string(user.Role),
		"exp":     time.Now().Add(time.Duration(s.cfg.Auth.TokenTTLHours) * time.Hour).Unix(),
	}
	if user.Email != nil {
		claims["email"] = *user.Email
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.JwtSecret))
}
