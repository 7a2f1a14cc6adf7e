package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fanconnect/portal/internal/domain/user"
	"github.com/fanconnect/portal/internal/store"
)

type AuthService struct {
	store *store.Store
}

func NewAuthService(st *store.Store) *AuthService {
	return &AuthService{store: st}
}

// Register creates a new account. Usernames are unique case-insensitively;
// an omitted role defaults to the regular user role.
func (s *AuthService) Register(ctx context.Context, username, password, email, role string) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "AuthService.Register")
	defer span.End()

	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	role = strings.TrimSpace(role)

	if username == "" {
		return user.User{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if password == "" {
		return user.User{}, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	if email == "" {
		return user.User{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if role == "" {
		role = user.RoleUser
	}
	if !user.ValidRole(role) {
		return user.User{}, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}

	existing, err := s.store.Users(ctx)
	if err != nil {
		return user.User{}, fmt.Errorf("list users: %w", err)
	}
	for _, u := range existing {
		if strings.EqualFold(u.Username, username) {
			return user.User{}, fmt.Errorf("%w: username %q is taken", ErrInvalidInput, username)
		}
	}

	record, err := s.store.AddUser(ctx, store.NewUserInput{
		Username: username,
		Password: password,
		Email:    email,
		Role:     role,
	})
	if err != nil {
		return user.User{}, fmt.Errorf("add user: %w", err)
	}

	return record, nil
}

// Login authenticates by exact username and password match and opens the
// session. Bad credentials surface as ErrUnauthorized without revealing
// which of the two fields was wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "AuthService.Login")
	defer span.End()

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return user.User{}, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	record, ok, err := s.store.Authenticate(ctx, username, password)
	if err != nil {
		return user.User{}, fmt.Errorf("authenticate: %w", err)
	}
	if !ok {
		return user.User{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	return record, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "AuthService.Logout")
	defer span.End()

	if err := s.store.Logout(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Session returns the current session user, or ErrUnauthorized when no
// session is open.
func (s *AuthService) Session(ctx context.Context) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "AuthService.Session")
	defer span.End()

	record, ok, err := s.store.CurrentSession(ctx)
	if err != nil {
		return user.User{}, fmt.Errorf("current session: %w", err)
	}
	if !ok {
		return user.User{}, fmt.Errorf("%w: no active session", ErrUnauthorized)
	}
	return record, nil
}
