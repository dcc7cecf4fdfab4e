package user

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/wms/cmd/config"
	"github.com/muhammadheryan/wms/constant"
	"github.com/muhammadheryan/wms/model"
	redisrepo "github.com/muhammadheryan/wms/repository/redis"
	userrepo "github.com/muhammadheryan/wms/repository/user"
	utilsContext "github.com/muhammadheryan/wms/utils/context"
	"github.com/muhammadheryan/wms/utils/errors"
	"github.com/muhammadheryan/wms/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context) error
	Refresh(ctx context.Context) error
	Me(ctx context.Context) (*model.UserResponse, error)
	ListUsers(ctx context.Context) ([]model.UserResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*model.Principal, error)
}

type UserAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository) UserApp {
	return &UserAppImpl{
		config:    config,
		userRepo:  userRepo,
		redisRepo: redisRepo,
	}
}

type claims struct {
	Role constant.Role `json:"role"`
	jwt.RegisteredClaims
}

// Login answers ErrInvalidPassword for unknown users too, so usernames can't be probed.
func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Username: req.Username})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	token, jti, err := s.generateJWT(user)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err = s.redisRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	logger.Info("[Login] user logged in", zap.Uint64("user_id", user.ID), zap.String("role", string(user.Role)))
	return &model.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		User:        user.ToResponse(),
	}, nil
}

func (s *UserAppImpl) Logout(ctx context.Context) error {
	p, err := utilsContext.Authorize(ctx)
	if err != nil {
		return err
	}
	if err := s.redisRepo.DeleteSession(ctx, p.SessionID); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *UserAppImpl) Refresh(ctx context.Context) error {
	return errors.SetCustomError(constant.ErrNotImplemented)
}

func (s *UserAppImpl) Me(ctx context.Context) (*model.UserResponse, error) {
	p, err := utilsContext.Authorize(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: p.UserID})
	if err != nil {
		logger.Error("[Me] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	resp := user.ToResponse()
	return &resp, nil
}

func (s *UserAppImpl) ListUsers(ctx context.Context) ([]model.UserResponse, error) {
	p, err := utilsContext.Authorize(ctx)
	if err != nil {
		return nil, err
	}
	if !p.IsAdmin() {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		logger.Error("[ListUsers] err userRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	out := make([]model.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, users[i].ToResponse())
	}
	return out, nil
}

// ValidateToken checks the signature and the live session, then reloads the user so
// role and warehouse changes apply without a new login.
func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.Principal, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}

	userID, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid user id in token")
	}
	if c.ID == "" {
		return nil, fmt.Errorf("token missing jti")
	}

	sessionUserID, err := s.redisRepo.GetSession(ctx, c.ID)
	if err != nil {
		if stderrors.Is(err, redisrepo.ErrSessionNotFound) {
			return nil, fmt.Errorf("invalid or expired session")
		}
		return nil, err
	}
	if sessionUserID != userID {
		return nil, fmt.Errorf("token does not match user session")
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %d no longer exists", userID)
	}

	return &model.Principal{
		UserID:       user.ID,
		SessionID:    c.ID,
		Role:         user.Role,
		WarehouseIDs: model.ParseWarehouseIDs(user.WarehouseIDs),
	}, nil
}

func (s *UserAppImpl) generateJWT(user *model.UserEntity) (string, string, error) {
	now := time.Now()
	c := claims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(user.ID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Auth.JWTExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, c.ID, nil
}
