package usecases

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gowaveline.backend/internal/domain/entities"
	domainerrors "gowaveline.backend/internal/domain/errors"
	"gowaveline.backend/pkg/crypto"
)

type stubUserRepo struct {
	users map[string]*entities.User
}

func newStubUserRepo(users ...*entities.User) *stubUserRepo {
	s := &stubUserRepo{users: map[string]*entities.User{}}
	for _, u := range users {
		s.users[u.Email] = u
	}
	return s
}

func (s *stubUserRepo) Create(ctx context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	s.users[user.Email] = user
	return nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	u, ok := s.users[email]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return u, nil
}

func (s *stubUserRepo) List(ctx context.Context) ([]*entities.User, error) {
	var items []*entities.User
	for _, u := range s.users {
		items = append(items, u)
	}
	return items, nil
}

func adminUser(t *testing.T, password string) *entities.User {
	t.Helper()
	hash, err := crypto.HashPassword(password)
	require.NoError(t, err)
	return &entities.User{
		ID:           uuid.New(),
		Email:        "admin@gowaveline.test",
		Name:         "Admin",
		PasswordHash: hash,
		Role:         entities.UserRoleAdmin,
	}
}

func TestAuthUsecase_Login(t *testing.T) {
	user := adminUser(t, "correct horse")
	jwtSvc := testJWTService()
	uc := NewAuthUsecase(newStubUserRepo(user), jwtSvc)
	ctx := context.Background()

	resp, err := uc.Login(ctx, &entities.LoginInput{Email: user.Email, Password: "correct horse"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)

	claims, err := jwtSvc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, "admin", claims.Role)

	// Wrong password and unknown email fail identically
	_, err = uc.Login(ctx, &entities.LoginInput{Email: user.Email, Password: "wrong"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = uc.Login(ctx, &entities.LoginInput{Email: "nobody@gowaveline.test", Password: "correct horse"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthUsecase_Register(t *testing.T) {
	existing := adminUser(t, "pw")
	uc := NewAuthUsecase(newStubUserRepo(existing), testJWTService())
	ctx := context.Background()

	user, err := uc.Register(ctx, &entities.CreateUserInput{
		Email:    "new@gowaveline.test",
		Name:     "New Member",
		Password: "long enough pw",
	})
	require.NoError(t, err)
	require.Equal(t, entities.UserRoleMember, user.Role, "unknown roles default to member")
	require.NotEqual(t, "long enough pw", user.PasswordHash)

	_, err = uc.Register(ctx, &entities.CreateUserInput{
		Email:    existing.Email,
		Name:     "Dup",
		Password: "long enough pw",
	})
	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestAuthUsecase_RefreshToken(t *testing.T) {
	user := adminUser(t, "pw")
	jwtSvc := testJWTService()
	uc := NewAuthUsecase(newStubUserRepo(user), jwtSvc)
	ctx := context.Background()

	login, err := uc.Login(ctx, &entities.LoginInput{Email: user.Email, Password: "pw"})
	require.NoError(t, err)

	refreshed, err := uc.RefreshToken(ctx, login.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, refreshed.AccessToken)

	_, err = uc.RefreshToken(ctx, "garbage-token")
	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
