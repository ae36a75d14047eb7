package repository

import "github.com/jhoicas/Tienda-pos/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
// Las implementaciones devuelven (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción (ver sales.TxRunner).
	GetForUpdate(id int64) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateQuantity fija la cantidad en stock sin tocar el resto de campos.
	UpdateQuantity(id int64, quantity int64) error
	// List devuelve los productos cuyo nombre contiene el filtro (substring,
	// sensible a mayúsculas). Filtro vacío devuelve todos.
	List(filter string) ([]*entity.Product, error)
	// LowStock devuelve los productos con quantity <= min_stock.
	LowStock() ([]*entity.Product, error)
	Delete(id int64) error
}
