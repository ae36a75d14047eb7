package repository

import "github.com/jhoicas/Tienda-pos/internal/domain/entity"

// SaleRepository puerto de persistencia para ventas. Solo inserción: las
// ventas son inmutables una vez confirmadas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
}
