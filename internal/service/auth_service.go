package service

import (
	"context"
	"fmt"
	"time"

	"smartbyte-be/internal/config"
	"smartbyte-be/internal/dto"
	"smartbyte-be/internal/entity"
	"smartbyte-be/internal/pkg/logger"
	"smartbyte-be/internal/repository/specification"
	"smartbyte-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	RegisterStaff(ctx context.Context, req *dto.RegisterStaffRequest) error
	EnsureDefaultAdmin(ctx context.Context, email, password string) error
}

// authService covers back-office accounts only. Customers chat anonymously
// and never authenticate.
type authService struct {
	uowFactory unitofwork.RepositoryFactory
	authCfg    config.AuthConfig
	log        logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, authCfg config.AuthConfig, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		authCfg:    authCfg,
		log:        log,
	}
}

func (a *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := a.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.Filter("email", req.Email))
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.Id.String(),
		"role":    string(user.Role),
		"exp":     time.Now().Add(a.authCfg.JwtExpiry).Unix(),
	})
	signed, err := token.SignedString([]byte(a.authCfg.JwtSecret))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &dto.LoginResponse{
		Token:    signed,
		FullName: user.FullName,
		Role:     string(user.Role),
	}, nil
}

func (a *authService) RegisterStaff(ctx context.Context, req *dto.RegisterStaffRequest) error {
	uow := a.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.Filter("email", req.Email))
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return fiber.NewError(fiber.StatusConflict, "Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	role := entity.UserRoleStaff
	if req.Role == string(entity.UserRoleAdmin) {
		role = entity.UserRoleAdmin
	}

	user := &entity.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         role,
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	a.log.Info("AuthService", "staff account registered", map[string]interface{}{
		"email": user.Email,
		"role":  string(user.Role),
	})
	return nil
}

// EnsureDefaultAdmin seeds the first admin account when the user table is
// empty, so a fresh deployment can log in to the back office.
func (a *authService) EnsureDefaultAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	uow := a.uowFactory.NewUnitOfWork(ctx)

	count, err := uow.UserRepository().Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Administrator",
		Role:         entity.UserRoleAdmin,
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	a.log.Info("AuthService", "default admin account created", map[string]interface{}{"email": email})
	return nil
}
