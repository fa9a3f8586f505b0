package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/05ryt31/No-more-FOMO/internal/auth"
	"github.com/05ryt31/No-more-FOMO/internal/domain"
	"github.com/05ryt31/No-more-FOMO/internal/service/ports"
)

const (
	bcryptCost        = 12
	minPasswordLength = 8
)

type UserService struct {
	repo    ports.UserRepo
	uniRepo ports.UniversityRepo
	tokens  *auth.TokenManager
}

func NewUserService(repo ports.UserRepo, uniRepo ports.UniversityRepo, tokens *auth.TokenManager) *UserService {
	return &UserService{
		repo:    repo,
		uniRepo: uniRepo,
		tokens:  tokens,
	}
}

// Signup creates an account for an institutional email and returns a signed
// token for it.
func (s *UserService) Signup(ctx context.Context, input domain.SignupInput) (*domain.AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: please enter a valid email address", domain.ErrValidation)
	}
	if !strings.HasSuffix(email, ".edu") {
		return nil, fmt.Errorf("%w: please use your university email address (.edu domain)", domain.ErrValidation)
	}
	if len(input.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters long", domain.ErrValidation, minPasswordLength)
	}

	if _, err := s.uniRepo.GetByID(ctx, input.UniversityID); err != nil {
		return nil, fmt.Errorf("check university: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		UniversityID: input.UniversityID,
		Interests:    []string{},
		IsActive:     true,
	}

	if err = s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &domain.AuthResult{Token: token, User: user}, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		// Do not reveal whether the email exists.
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrAccountDisabled
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &domain.AuthResult{Token: token, User: user}, nil
}

// Authenticate implements ports.Authenticator. Any failure (bad token,
// unknown user, deactivated account) collapses into ErrUnauthorized.
func (s *UserService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrUnauthorized
	}

	return user, nil
}
