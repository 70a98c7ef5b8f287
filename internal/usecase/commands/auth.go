package commands

import (
	"context"

	"restaurant-api/internal/domain/user"
	"restaurant-api/internal/infra"
	"restaurant-api/internal/pkg/errs"
	"restaurant-api/internal/pkg/jwt"
	"restaurant-api/internal/pkg/password"
	"restaurant-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrDuplicateEmail       = errs.New("email already registered")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type AuthResult struct {
	UserID uuid.UUID
	Name   string
	Email  string
	Role   string
	Token  string
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, plainPassword string) (*AuthResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if _, err := user.NewPassword(in.Password); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	role := user.RoleCustomer
	if in.Role != "" {
		role, err = user.NewRole(in.Role)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
	}

	hash, err := password.HashPassword(in.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	u, err := user.NewUser(in.Name, email, hash, role)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Users().Create(ctx, u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateEmail)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return a.issueToken(u)
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*AuthResult, error) {
	var u *user.User
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Users().FindByEmail(ctx, email)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrInvalidCredentials)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		u = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := password.ComparePassword(u.PasswordHash(), plainPassword); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	return a.issueToken(u)
}

func (a *authCommandsImpl) issueToken(u *user.User) (*AuthResult, error) {
	token, err := a.jwtService.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AuthResult{
		UserID: u.ID(),
		Name:   u.Name(),
		Email:  u.Email().Value(),
		Role:   u.Role().String(),
		Token:  token,
	}, nil
}
