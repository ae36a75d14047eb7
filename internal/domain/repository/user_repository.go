package repository

import "github.com/jhoicas/Tienda-pos/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	// GetByUsername devuelve (nil, nil) si el usuario no existe.
	GetByUsername(username string) (*entity.User, error)
	Count() (int64, error)
}
