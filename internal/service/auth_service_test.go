package service

import (
	"testing"

	"genshin-trade-center/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeRoleRepo hands out the seeded default roles by code
type fakeRoleRepo struct {
	roles map[string]model.Role
}

func newFakeRoleRepo() *fakeRoleRepo {
	repo := &fakeRoleRepo{roles: make(map[string]model.Role)}
	for i, r := range model.DefaultRoles {
		r.ID = uint(i + 1)
		repo.roles[r.Code] = r
	}
	return repo
}

func (r *fakeRoleRepo) FindAll() ([]model.Role, error) {
	var out []model.Role
	for _, role := range r.roles {
		out = append(out, role)
	}
	return out, nil
}

func (r *fakeRoleRepo) FindByID(id uint) (*model.Role, error) {
	for _, role := range r.roles {
		if role.ID == id {
			found := role
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRoleRepo) FindByCode(code string) (*model.Role, error) {
	role, ok := r.roles[code]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &role, nil
}

func (r *fakeRoleRepo) Create(role *model.Role) error {
	r.roles[role.Code] = *role
	return nil
}

func (r *fakeRoleRepo) SeedDefaults() error { return nil }

func validRegisterReq() *model.RegisterRequest {
	return &model.RegisterRequest{
		Username: "traveler",
		Email:    "traveler@example.com",
		Password: "wind-glider-8",
	}
}

func TestRegister_CreatesTraderAccount(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, newFakeRoleRepo())

	user, err := svc.Register(validRegisterReq())
	require.NoError(t, err)

	assert.Equal(t, "traveler", user.Username)
	require.NotNil(t, user.RoleID)

	stored, err := users.FindByEmail("traveler@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "wind-glider-8", stored.Password, "password must be stored hashed")
	assert.True(t, stored.CheckPassword("wind-glider-8"))
}

func TestRegister_ShortPasswordRejected(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), newFakeRoleRepo())

	req := validRegisterReq()
	req.Password = "short"

	_, err := svc.Register(req)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, newFakeRoleRepo())

	_, err := svc.Register(validRegisterReq())
	require.NoError(t, err)

	dup := validRegisterReq()
	dup.Username = "someone_else"
	_, err = svc.Register(dup)
	require.ErrorIs(t, err, ErrConflict)
}

func TestRegister_DuplicateUsernameConflicts(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, newFakeRoleRepo())

	_, err := svc.Register(validRegisterReq())
	require.NoError(t, err)

	dup := validRegisterReq()
	dup.Email = "other@example.com"
	_, err = svc.Register(dup)
	require.ErrorIs(t, err, ErrConflict)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, newFakeRoleRepo())

	_, err := svc.Register(validRegisterReq())
	require.NoError(t, err)

	_, err = svc.Login("traveler@example.com", "not-the-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_ThenValidateTokenRoundtrip(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, newFakeRoleRepo())

	_, err := svc.Register(validRegisterReq())
	require.NoError(t, err)

	login, err := svc.Login("traveler@example.com", "wind-glider-8")
	require.NoError(t, err)
	require.NotEmpty(t, login.Token)

	validated, err := svc.ValidateToken(login.Token)
	require.NoError(t, err)
	assert.Equal(t, login.User.ID, validated.User.ID)
}

func TestLogin_SecondLoginInvalidatesFirstToken(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, newFakeRoleRepo())

	_, err := svc.Register(validRegisterReq())
	require.NoError(t, err)

	first, err := svc.Login("traveler@example.com", "wind-glider-8")
	require.NoError(t, err)
	second, err := svc.Login("traveler@example.com", "wind-glider-8")
	require.NoError(t, err)

	// single session: only the newest token version survives
	_, err = svc.ValidateToken(first.Token)
	require.Error(t, err)
	_, err = svc.ValidateToken(second.Token)
	require.NoError(t, err)
}
