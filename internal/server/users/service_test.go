package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillbridge/skillbridge/internal/common"
	"github.com/skillbridge/skillbridge/internal/server/config"
)

// --- helpers ---

type fakeRepo struct {
	users     map[string]*User
	createErr error
	getErr    error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]*User)}
}

func (f *fakeRepo) Create(ctx context.Context, u *User) (*User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = "id-" + u.Email
	u.CreatedAt = time.Now()
	f.users[u.Email] = u
	return u, nil
}

func (f *fakeRepo) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.users[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u, nil
}

func newService(repo Repository) *Service {
	cfg := &config.Config{
		SecretKey:           "k",
		AccessTokenValidity: time.Hour,
	}
	return NewService(repo, cfg)
}

// --- tests ---

func TestRegister_HashesPassword(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	user, err := svc.Register(context.Background(), "Sarah", "Sarah@Example.com", "pw", "jobseeker")
	require.NoError(t, err)

	assert.Equal(t, "sarah@example.com", user.Email)
	assert.NotEqual(t, "pw", user.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, "A", "a@b.com", "pw", "jobseeker")
	require.NoError(t, err)

	// even under a different role: backend uniqueness is email-wide
	_, err = svc.Register(ctx, "A", "a@b.com", "pw", "recruiter")
	require.ErrorIs(t, err, common.ErrDuplicateAccount)
}

func TestRegister_MissingFields(t *testing.T) {
	svc := newService(newFakeRepo())
	ctx := context.Background()

	for _, args := range [][4]string{
		{"", "a@b.com", "pw", "jobseeker"},
		{"A", "", "pw", "jobseeker"},
		{"A", "a@b.com", "", "jobseeker"},
		{"A", "a@b.com", "pw", ""},
	} {
		_, err := svc.Register(ctx, args[0], args[1], args[2], args[3])
		assert.ErrorIs(t, err, common.ErrValidation)
	}
}

func TestLogin_Succeeds(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, "A", "a@b.com", "pw", "recruiter")
	require.NoError(t, err)

	result, err := svc.Login(ctx, "A@B.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "recruiter", result.Role)

	claims, err := svc.ParseToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "recruiter", claims.Role)
}

func TestLogin_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, "A", "a@b.com", "pw", "jobseeker")
	require.NoError(t, err)

	_, errUnknown := svc.Login(ctx, "ghost@b.com", "pw")
	_, errWrongPw := svc.Login(ctx, "a@b.com", "nope")

	require.ErrorIs(t, errUnknown, common.ErrInvalidCredentials)
	require.ErrorIs(t, errWrongPw, common.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestLogin_RepositoryFailureIsInternal(t *testing.T) {
	repo := newFakeRepo()
	repo.getErr = assert.AnError
	svc := newService(repo)

	_, err := svc.Login(context.Background(), "a@b.com", "pw")
	require.ErrorIs(t, err, common.ErrInternal)
}
