package staff

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/avetra/venue-booking-service/internal/domain"
	staffStorage "github.com/avetra/venue-booking-service/internal/infra/storage/staff"
	"github.com/avetra/venue-booking-service/internal/service/staff/models"
)

type fakeStaffRepo struct {
	user    *domain.StaffUser
	role    *domain.Role
	created *domain.StaffUser
}

func (f *fakeStaffRepo) GetByEmail(_ context.Context, email string) (*domain.StaffUser, error) {
	if f.user == nil || f.user.Email != email {
		return nil, staffStorage.ErrStaffNotFound
	}
	return f.user, nil
}

func (f *fakeStaffRepo) GetByID(_ context.Context, _ int64) (*domain.StaffUser, error) {
	if f.user == nil {
		return nil, staffStorage.ErrStaffNotFound
	}
	return f.user, nil
}

func (f *fakeStaffRepo) List(_ context.Context) ([]*domain.StaffUser, error) {
	if f.user == nil {
		return nil, nil
	}
	return []*domain.StaffUser{f.user}, nil
}

func (f *fakeStaffRepo) Create(_ context.Context, user *domain.StaffUser) (*domain.StaffUser, error) {
	u := *user
	u.ID = 5
	f.created = &u
	return &u, nil
}

func (f *fakeStaffRepo) GetRoleByID(_ context.Context, id int64) (*domain.Role, error) {
	if f.role == nil || f.role.ID != id {
		return nil, staffStorage.ErrRoleNotFound
	}
	return f.role, nil
}

func (f *fakeStaffRepo) ListRoles(_ context.Context) ([]*domain.Role, error) {
	if f.role == nil {
		return nil, nil
	}
	return []*domain.Role{f.role}, nil
}

type fakeTokenIssuer struct {
	staffID int64
	role    string
}

func (f *fakeTokenIssuer) Generate(staffID int64, role string) (string, error) {
	f.staffID = staffID
	f.role = role
	return "test-token", nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testRepo(t *testing.T, password string) *fakeStaffRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &fakeStaffRepo{
		user: &domain.StaffUser{
			ID:           3,
			Name:         "Aizhan",
			Email:        "aizhan@example.com",
			PasswordHash: string(hash),
			RoleID:       2,
		},
		role: &domain.Role{
			ID:      2,
			Name:    "manager",
			IsAdmin: false,
			Pages:   []string{"dashboard", "bookings"},
		},
	}
}

func TestLogin_Success(t *testing.T) {
	repo := testRepo(t, "secret-pass")
	issuer := &fakeTokenIssuer{}
	svc := NewService(repo, issuer, nopLogger{})

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "  Aizhan@Example.com ",
		Password: "secret-pass",
	})

	require.NoError(t, err)
	assert.Equal(t, "test-token", resp.Token)
	assert.Equal(t, int64(3), resp.User.ID)
	assert.Equal(t, int64(3), issuer.staffID)
	assert.Equal(t, "manager", issuer.role)
	require.NotNil(t, resp.User.Role)
	assert.Equal(t, "manager", resp.User.Role.Name)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := NewService(testRepo(t, "secret-pass"), &fakeTokenIssuer{}, nopLogger{})

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "aizhan@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmailIndistinguishable(t *testing.T) {
	svc := NewService(testRepo(t, "secret-pass"), &fakeTokenIssuer{}, nopLogger{})

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret-pass",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreate_HashesPassword(t *testing.T) {
	repo := testRepo(t, "secret-pass")
	repo.user = nil // no existing user with that email
	svc := NewService(repo, &fakeTokenIssuer{}, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateStaffRequest{
		Name:     "Marat",
		Email:    "Marat@Example.com",
		Password: "long-enough",
		RoleID:   2,
	})

	require.NoError(t, err)
	assert.Equal(t, "marat@example.com", resp.Email)
	require.NotNil(t, repo.created)
	assert.NotEqual(t, "long-enough", repo.created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.created.PasswordHash), []byte("long-enough")))
}

func TestCreate_ShortPassword(t *testing.T) {
	repo := testRepo(t, "secret-pass")
	repo.user = nil
	svc := NewService(repo, &fakeTokenIssuer{}, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateStaffRequest{
		Name:     "Marat",
		Email:    "marat@example.com",
		Password: "short",
		RoleID:   2,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_EmailTaken(t *testing.T) {
	repo := testRepo(t, "secret-pass")
	svc := NewService(repo, &fakeTokenIssuer{}, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateStaffRequest{
		Name:     "Imposter",
		Email:    "aizhan@example.com",
		Password: "long-enough",
		RoleID:   2,
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestCreate_UnknownRole(t *testing.T) {
	repo := testRepo(t, "secret-pass")
	repo.user = nil
	svc := NewService(repo, &fakeTokenIssuer{}, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateStaffRequest{
		Name:     "Marat",
		Email:    "marat@example.com",
		Password: "long-enough",
		RoleID:   99,
	})

	assert.ErrorIs(t, err, ErrRoleNotFound)
}
