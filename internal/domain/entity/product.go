package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Monedas válidas para Product.
const (
	CurrencyUSD = "USD"
	CurrencyCUP = "CUP"
)

// MinStock por defecto cuando el producto no define uno.
const DefaultMinStock = 5

// Product representa un producto del catálogo. Quantity solo la mutan el
// procesador de ventas (descuento) o la edición manual del catálogo; nunca
// puede quedar negativa.
type Product struct {
	ID        int64
	Name      string
	Quantity  int64
	Price     decimal.Decimal // precio unitario en Currency
	Currency  string          // USD o CUP
	ImagePath string          // referencia opaca elegida por la UI
	MinStock  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LowStock indica si el producto debe aparecer en la alerta de stock bajo.
func (p *Product) LowStock() bool {
	return p.Quantity <= p.MinStock
}

// ValidCurrency verifica que la moneda sea una de las soportadas.
func ValidCurrency(c string) bool {
	return c == CurrencyUSD || c == CurrencyCUP
}
