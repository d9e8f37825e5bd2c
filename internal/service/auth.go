package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"fintrack/internal/model"
	"fintrack/internal/repository"
)

type Authorization interface {
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Profile(ctx context.Context, userID int64) (*model.User, error)
	UpdateProfile(ctx context.Context, userID int64, username, email string) error
	ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error
	ParseToken(token string) (int64, error)
}

type claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"uid"`
}

type Auth struct {
	repo     repository.Users
	secret   []byte
	tokenTTL time.Duration
}

func NewAuth(repo repository.Users, secret string, tokenTTL time.Duration) *Auth {
	return &Auth{
		repo:     repo,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

func (a *Auth) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("service.Auth, hash password error: %v", err)
	}
	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if _, err = a.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the password and issues a signed bearer token. A missing user
// and a wrong password both surface as ErrUnauthorized so the response does
// not reveal which one it was.
func (a *Auth) Login(ctx context.Context, email, password string) (string, error) {
	user, err := a.repo.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return "", fmt.Errorf("%w: invalid credentials", model.ErrUnauthorized)
	}
	if err != nil {
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", fmt.Errorf("%w: invalid credentials", model.ErrUnauthorized)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(a.tokenTTL)),
		},
		UserID: user.ID,
	})
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("service.Auth, sign token error: %v", err)
	}
	return signed, nil
}

func (a *Auth) Profile(ctx context.Context, userID int64) (*model.User, error) {
	return a.repo.Get(ctx, userID)
}

func (a *Auth) UpdateProfile(ctx context.Context, userID int64, username, email string) error {
	return a.repo.UpdateProfile(ctx, userID, username, email)
}

func (a *Auth) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	user, err := a.repo.Get(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)) != nil {
		return fmt.Errorf("%w: current password doesn't match", model.ErrUnauthorized)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("service.Auth, hash password error: %v", err)
	}
	return a.repo.UpdatePassword(ctx, userID, string(hash))
}

func (a *Auth) ParseToken(tokenString string) (int64, error) {
	parsed := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("%w: invalid token", model.ErrUnauthorized)
	}
	return parsed.UserID, nil
}
