package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"encoresocial/internal/domain"
)

const searchResultLimit = 20

var (
	emailRegexp  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	handleRegexp = regexp.MustCompile(`^[a-z0-9_]+$`)
)

type userService struct {
	userRepo    domain.UserRepository
	hasher      domain.PasswordHasher
	tokenIssuer domain.TokenIssuer
	tokenExpiry time.Duration
	notifier    domain.Notifier
}

// NewUserService creates a UserService with the given repository and auth ports.
func NewUserService(userRepo domain.UserRepository, hasher domain.PasswordHasher, tokenIssuer domain.TokenIssuer, tokenExpiry time.Duration, notifier domain.Notifier) domain.UserService {
	return &userService{
		userRepo:    userRepo,
		hasher:      hasher,
		tokenIssuer: tokenIssuer,
		tokenExpiry: tokenExpiry,
		notifier:    notifier,
	}
}

// CleanHandle normalizes a username the way the signup form does: strip a
// leading @, trim, lowercase.
func CleanHandle(handle string) string {
	handle = strings.TrimSpace(handle)
	handle = strings.TrimPrefix(handle, "@")
	return strings.ToLower(handle)
}

func (s *userService) SignUp(ctx context.Context, email, password, name, handle string) (string, *domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	name = strings.TrimSpace(name)
	handle = CleanHandle(handle)

	if !emailRegexp.MatchString(email) {
		return "", nil, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}
	if name == "" {
		return "", nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if len(password) < 6 {
		return "", nil, fmt.Errorf("%w: password must be at least 6 characters", domain.ErrInvalidInput)
	}
	if len(handle) < 3 {
		return "", nil, fmt.Errorf("%w: username must be at least 3 characters", domain.ErrInvalidInput)
	}
	if !handleRegexp.MatchString(handle) {
		return "", nil, fmt.Errorf("%w: username can only contain letters, numbers, and underscores", domain.ErrInvalidInput)
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return "", nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrNotFound) {
		return "", nil, fmt.Errorf("check email: %w", err)
	}
	if _, err := s.userRepo.GetByHandle(ctx, handle); err == nil {
		return "", nil, domain.ErrHandleTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return "", nil, fmt.Errorf("check handle: %w", err)
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return "", nil, fmt.Errorf("generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(salt, password)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := domain.NewUser(email, name, handle, now, now)
	user.Salt = salt
	user.PasswordHash = hash
	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokenIssuer.Issue(user.ID, user.Email, s.tokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	if s.notifier != nil {
		s.notifier.Welcome(ctx, user)
	}
	return token, user, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get user: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, user.Salt, password); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	token, err := s.tokenIssuer.Issue(user.ID, user.Email, s.tokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return token, user, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *userService) Search(ctx context.Context, viewerID, term string) ([]*domain.User, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []*domain.User{}, nil
	}
	users, err := s.userRepo.Search(ctx, term, viewerID, searchResultLimit)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return users, nil
}
