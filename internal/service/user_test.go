package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/05ryt31/No-more-FOMO/internal/auth"
	"github.com/05ryt31/No-more-FOMO/internal/domain"
	"github.com/05ryt31/No-more-FOMO/internal/service/ports/mocks"
)

func newUserService(t *testing.T) (*UserService, *mocks.MockUserRepo, *mocks.MockUniversityRepo) {
	t.Helper()
	repo := mocks.NewMockUserRepo(t)
	uniRepo := mocks.NewMockUniversityRepo(t)
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewUserService(repo, uniRepo, tokens), repo, uniRepo
}

func TestUserService_Signup(t *testing.T) {
	svc, repo, uniRepo := newUserService(t)

	uniRepo.EXPECT().GetByID(mock.Anything, "ucla").Return(&domain.University{ID: "ucla"}, nil)
	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "alice@ucla.edu" && u.IsActive && u.PasswordHash != "hunter2secret"
	})).Return(nil)

	res, err := svc.Signup(context.Background(), domain.SignupInput{
		Email:        "  Alice@UCLA.edu ",
		Password:     "hunter2secret",
		UniversityID: "ucla",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "alice@ucla.edu", res.User.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(res.User.PasswordHash), []byte("hunter2secret")))
}

func TestUserService_Signup_Validation(t *testing.T) {
	svc, _, _ := newUserService(t)

	tests := []struct {
		name  string
		input domain.SignupInput
	}{
		{"not an email", domain.SignupInput{Email: "alice", Password: "hunter2secret", UniversityID: "ucla"}},
		{"non-edu domain", domain.SignupInput{Email: "alice@gmail.com", Password: "hunter2secret", UniversityID: "ucla"}},
		{"short password", domain.SignupInput{Email: "alice@ucla.edu", Password: "short", UniversityID: "ucla"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Signup(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestUserService_Signup_UnknownUniversity(t *testing.T) {
	svc, _, uniRepo := newUserService(t)

	uniRepo.EXPECT().GetByID(mock.Anything, "nowhere").Return(nil, domain.ErrUniversityNotFound)

	_, err := svc.Signup(context.Background(), domain.SignupInput{
		Email:        "alice@ucla.edu",
		Password:     "hunter2secret",
		UniversityID: "nowhere",
	})

	assert.ErrorIs(t, err, domain.ErrUniversityNotFound)
}

func TestUserService_Signup_EmailTaken(t *testing.T) {
	svc, repo, uniRepo := newUserService(t)

	uniRepo.EXPECT().GetByID(mock.Anything, "ucla").Return(&domain.University{ID: "ucla"}, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Signup(context.Background(), domain.SignupInput{
		Email:        "alice@ucla.edu",
		Password:     "hunter2secret",
		UniversityID: "ucla",
	})

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserService_Login(t *testing.T) {
	svc, repo, _ := newUserService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2secret"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{ID: "u1", Email: "alice@ucla.edu", PasswordHash: string(hash), IsActive: true}
	repo.EXPECT().GetByEmail(mock.Anything, "alice@ucla.edu").Return(user, nil)

	res, err := svc.Login(context.Background(), "Alice@UCLA.edu", "hunter2secret")

	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "u1", res.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, repo, _ := newUserService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2secret"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{ID: "u1", PasswordHash: string(hash), IsActive: true}
	repo.EXPECT().GetByEmail(mock.Anything, "alice@ucla.edu").Return(user, nil)

	_, err = svc.Login(context.Background(), "alice@ucla.edu", "wrong")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc, repo, _ := newUserService(t)

	repo.EXPECT().GetByEmail(mock.Anything, "ghost@ucla.edu").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Login(context.Background(), "ghost@ucla.edu", "whatever1")

	// The caller must not learn whether the email exists.
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestUserService_Login_DisabledAccount(t *testing.T) {
	svc, repo, _ := newUserService(t)

	user := &domain.User{ID: "u1", PasswordHash: "irrelevant", IsActive: false}
	repo.EXPECT().GetByEmail(mock.Anything, "alice@ucla.edu").Return(user, nil)

	_, err := svc.Login(context.Background(), "alice@ucla.edu", "hunter2secret")

	assert.ErrorIs(t, err, domain.ErrAccountDisabled)
}

func TestUserService_Authenticate(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	uniRepo := mocks.NewMockUniversityRepo(t)
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	svc := NewUserService(repo, uniRepo, tokens)

	token, err := tokens.Issue("u1")
	require.NoError(t, err)

	user := &domain.User{ID: "u1", IsActive: true}
	repo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)

	got, err := svc.Authenticate(context.Background(), token)

	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
}

func TestUserService_Authenticate_Failures(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	uniRepo := mocks.NewMockUniversityRepo(t)
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	svc := NewUserService(repo, uniRepo, tokens)

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("unknown user", func(t *testing.T) {
		token, err := tokens.Issue("ghost")
		require.NoError(t, err)

		repo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

		_, err = svc.Authenticate(context.Background(), token)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("inactive user", func(t *testing.T) {
		token, err := tokens.Issue("u2")
		require.NoError(t, err)

		repo.EXPECT().GetByID(mock.Anything, "u2").Return(&domain.User{ID: "u2", IsActive: false}, nil)

		_, err = svc.Authenticate(context.Background(), token)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}
