package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Tienda-pos/internal/application/auth"
	"github.com/jhoicas/Tienda-pos/internal/application/dto"
	"github.com/jhoicas/Tienda-pos/internal/domain"
	"github.com/jhoicas/Tienda-pos/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Tienda-pos/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.users[u.Username] = u
	return nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (f *fakeUserRepo) Count() (int64, error) { return int64(len(f.users)), nil }

const testSecret = "secret-de-test"

func newAuthFixture(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	repo := &fakeUserRepo{users: map[string]*entity.User{
		"admin": {ID: 1, Username: "admin", PasswordHash: string(hash), Role: entity.RoleAdmin},
	}}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "tienda-pos-test",
	})
}

func TestLogin_CredencialesCorrectas_EmiteToken(t *testing.T) {
	uc := newAuthFixture(t)

	out, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, int64(1), out.User.ID)
	assert.Equal(t, "admin", out.User.Username)
	assert.Equal(t, "admin", out.User.Role)

	// El token emitido debe validar y cargar la identidad completa.
	userID, username, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), userID)
	assert.Equal(t, "admin", username)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_RecortaEspaciosDelUsername(t *testing.T) {
	uc := newAuthFixture(t)

	out, err := uc.Login(dto.LoginRequest{Username: "  admin  ", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", out.User.Username)
}

func TestLogin_PasswordErronea_EsUnauthorized(t *testing.T) {
	uc := newAuthFixture(t)

	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Usuario inexistente responde igual que password errónea para no revelar
// qué cuentas existen.
func TestLogin_UsuarioInexistente_EsUnauthorized(t *testing.T) {
	uc := newAuthFixture(t)

	_, err := uc.Login(dto.LoginRequest{Username: "nadie", Password: "admin123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CamposVacios_EsInvalido(t *testing.T) {
	uc := newAuthFixture(t)

	_, err := uc.Login(dto.LoginRequest{Username: "", Password: "admin123"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Login(dto.LoginRequest{Username: "admin", Password: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
