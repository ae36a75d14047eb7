package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
)

// User representa un usuario del sistema. Se crea una sola vez (el admin por
// defecto en el bootstrap); no hay edición posterior en este núcleo.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	Role         string // admin, vendedor
	CreatedAt    time.Time
}
