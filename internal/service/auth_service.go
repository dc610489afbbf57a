package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/tagnote-app/tagnote-be/internal/dto"
	"github.com/tagnote-app/tagnote-be/internal/entity"
	"github.com/tagnote-app/tagnote-be/internal/pkg/logger"
	"github.com/tagnote-app/tagnote-be/internal/pkg/mailer"
	"github.com/tagnote-app/tagnote-be/internal/pkg/serverutils"
	"github.com/tagnote-app/tagnote-be/internal/repository/memory"
	"github.com/tagnote-app/tagnote-be/internal/repository/specification"
	"github.com/tagnote-app/tagnote-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

type IAuthService interface {
	SignInWithLink(ctx context.Context, req *dto.SignInWithLinkRequest) error
	ExchangeCode(ctx context.Context, code string) (*dto.SessionResponse, error)
	SetSession(ctx context.Context, req *dto.SetSessionRequest) (*dto.SessionResponse, error)
	GetUser(ctx context.Context, userId uuid.UUID) (*dto.UserDTO, error)
	SignOut(ctx context.Context, refreshToken string) error
}

type authService struct {
	uowFactory   unitofwork.RepositoryFactory
	linkTokens   *memory.LinkTokenRepository
	emailService mailer.IEmailService
	logger       logger.ILogger
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	linkTokens *memory.LinkTokenRepository,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory:   uowFactory,
		linkTokens:   linkTokens,
		emailService: emailService,
		logger:       log,
	}
}

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return []byte(secret)
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func signAccessToken(userId uuid.UUID) (string, time.Time, error) {
	expiresAt := time.Now().Add(accessTokenTTL)
	claims := jwt.MapClaims{
		"user_id": userId.String(),
		"exp":     expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtSecret())
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func parseAccessToken(tokenStr string) (uuid.UUID, time.Time, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, time.Time{}, errors.New("invalid access token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, time.Time{}, errors.New("invalid claims")
	}

	userIdStr, _ := claims["user_id"].(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return uuid.Nil, time.Time{}, errors.New("invalid user id claim")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return uuid.Nil, time.Time{}, errors.New("missing expiry claim")
	}

	return userId, exp.Time, nil
}

// SignInWithLink issues a one-time code and emails the sign-in link. When the
// address is unknown and AllowCreate is false (the login screen), the caller
// sees an explicit error; the signup screen sets AllowCreate and gets a fresh
// account instead.
func (s *authService) SignInWithLink(ctx context.Context, req *dto.SignInWithLinkRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return serverutils.NewStoreFailure("failed to look up user", err)
	}

	if user == nil {
		if !req.AllowCreate {
			return serverutils.NewValidationFailed("email not registered")
		}
		user = &entity.User{
			Id:        uuid.New(),
			Email:     req.Email,
			CreatedAt: time.Now(),
		}
		if err := uow.UserRepository().Create(ctx, user); err != nil {
			return serverutils.NewStoreFailure("failed to create user", err)
		}
	}

	code := uuid.New().String()
	s.linkTokens.Save(&memory.LinkToken{
		Code:      code,
		UserId:    user.Id,
		Email:     user.Email,
		CreatedAt: time.Now(),
	})

	link := fmt.Sprintf("%s?code=%s", req.RedirectURL, code)

	go func() {
		if err := s.emailService.SendMagicLink(user.Email, link); err != nil {
			s.logger.Error("auth", "failed to send magic link", map[string]interface{}{
				"email": user.Email,
				"error": err.Error(),
			})
		}
	}()

	return nil
}

func (s *authService) ExchangeCode(ctx context.Context, code string) (*dto.SessionResponse, error) {
	token, ok := s.linkTokens.Consume(code)
	if !ok {
		return nil, serverutils.NewAuthRequired("invalid or expired sign-in code")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindByID(ctx, token.UserId)
	if err != nil {
		return nil, serverutils.NewStoreFailure("failed to look up user", err)
	}
	if user == nil {
		return nil, serverutils.NewAuthRequired("invalid or expired sign-in code")
	}

	now := time.Now()
	user.LastSignInAt = &now
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		s.logger.Warn("auth", "failed to record sign-in time", map[string]interface{}{
			"user_id": user.Id,
			"error":   err.Error(),
		})
	}

	return s.issueSession(ctx, uow, user)
}

func (s *authService) issueSession(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User) (*dto.SessionResponse, error) {
	accessToken, expiresAt, err := signAccessToken(user.Id)
	if err != nil {
		return nil, serverutils.NewStoreFailure("failed to sign session token", err)
	}

	rawRefreshToken := uuid.New().String()
	refreshTokenEntity := &entity.UserRefreshToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		TokenHash: hashToken(rawRefreshToken),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
		Revoked:   false,
		CreatedAt: time.Now(),
	}
	if err := uow.UserRepository().CreateRefreshToken(ctx, refreshTokenEntity); err != nil {
		return nil, serverutils.NewStoreFailure("failed to create session", err)
	}

	return &dto.SessionResponse{
		AccessToken:  accessToken,
		RefreshToken: rawRefreshToken,
		ExpiresAt:    expiresAt,
		User: dto.UserDTO{
			Id:    user.Id,
			Email: user.Email,
		},
	}, nil
}

// SetSession validates a token pair handed back by a client. A still-valid
// access token is accepted as-is; an expired one rotates through the refresh
// token.
func (s *authService) SetSession(ctx context.Context, req *dto.SetSessionRequest) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if userId, expiresAt, err := parseAccessToken(req.AccessToken); err == nil {
		user, err := uow.UserRepository().FindByID(ctx, userId)
		if err != nil {
			return nil, serverutils.NewStoreFailure("failed to look up user", err)
		}
		if user == nil {
			return nil, serverutils.NewAuthRequired("invalid session")
		}
		return &dto.SessionResponse{
			AccessToken:  req.AccessToken,
			RefreshToken: req.RefreshToken,
			ExpiresAt:    expiresAt,
			User: dto.UserDTO{
				Id:    user.Id,
				Email: user.Email,
			},
		}, nil
	}

	if req.RefreshToken == "" {
		return nil, serverutils.NewAuthRequired("invalid session")
	}

	tokenEntity, err := uow.UserRepository().FindRefreshToken(ctx,
		specification.ByTokenHash{TokenHash: hashToken(req.RefreshToken)},
		specification.NotRevoked{},
	)
	if err != nil {
		return nil, serverutils.NewStoreFailure("failed to look up session", err)
	}
	if tokenEntity == nil || time.Now().After(tokenEntity.ExpiresAt) {
		return nil, serverutils.NewAuthRequired("invalid session")
	}

	user, err := uow.UserRepository().FindByID(ctx, tokenEntity.UserId)
	if err != nil {
		return nil, serverutils.NewStoreFailure("failed to look up user", err)
	}
	if user == nil {
		return nil, serverutils.NewAuthRequired("invalid session")
	}

	accessToken, expiresAt, err := signAccessToken(user.Id)
	if err != nil {
		return nil, serverutils.NewStoreFailure("failed to sign session token", err)
	}

	return &dto.SessionResponse{
		AccessToken:  accessToken,
		RefreshToken: req.RefreshToken,
		ExpiresAt:    expiresAt,
		User: dto.UserDTO{
			Id:    user.Id,
			Email: user.Email,
		},
	}, nil
}

func (s *authService) GetUser(ctx context.Context, userId uuid.UUID) (*dto.UserDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindByID(ctx, userId)
	if err != nil {
		return nil, serverutils.NewStoreFailure("failed to look up user", err)
	}
	if user == nil {
		return nil, serverutils.NewAuthRequired("invalid session")
	}

	return &dto.UserDTO{
		Id:    user.Id,
		Email: user.Email,
	}, nil
}

func (s *authService) SignOut(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UserRepository().RevokeRefreshToken(ctx, hashToken(refreshToken))
}
