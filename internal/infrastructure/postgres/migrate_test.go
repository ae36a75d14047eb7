package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Tienda-pos/internal/domain/entity"
	"github.com/jhoicas/Tienda-pos/pkg/config"
)

type fakeUserRepo struct {
	users   []*entity.User
	created int
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.created++
	u.ID = int64(len(f.users) + 1)
	f.users = append(f.users, u)
	return nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Count() (int64, error) { return int64(len(f.users)), nil }

func TestEnsureDefaultAdmin_PrimerArranque_CreaElAdmin(t *testing.T) {
	repo := &fakeUserRepo{}
	cfg := config.BootstrapConfig{AdminUser: "admin", AdminPassword: "admin123"}

	require.NoError(t, ensureDefaultAdmin(repo, cfg))

	require.Len(t, repo.users, 1)
	admin := repo.users[0]
	assert.Equal(t, "admin", admin.Username)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.NoError(t,
		bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")),
		"la contraseña por defecto debe quedar hasheada con bcrypt")
	assert.NotEqual(t, "admin123", admin.PasswordHash, "nunca se persiste en plano")
}

// Con usuarios existentes el bootstrap no toca nada: es un chequeo
// idempotente, no un seed repetible.
func TestEnsureDefaultAdmin_ConUsuarios_NoHaceNada(t *testing.T) {
	repo := &fakeUserRepo{users: []*entity.User{
		{ID: 1, Username: "admin", Role: entity.RoleAdmin},
	}}

	require.NoError(t, ensureDefaultAdmin(repo, config.BootstrapConfig{
		AdminUser:     "admin",
		AdminPassword: "admin123",
	}))
	assert.Equal(t, 0, repo.created)
	assert.Len(t, repo.users, 1)
}
