package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveProductRequest entrada para crear o reemplazar un producto. El update es
// un reemplazo completo de todos los campos, no un patch parcial.
type SaveProductRequest struct {
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`             // USD o CUP
	MinStock  *int64          `json:"min_stock,omitempty"`  // nil -> 5
	ImagePath string          `json:"image_path,omitempty"` // ruta opaca elegida por la UI
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`
	MinStock  int64           `json:"min_stock"`
	LowStock  bool            `json:"low_stock"` // quantity <= min_stock
	ImagePath string          `json:"image_path,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse lista de productos del catálogo.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// StockAlert producto cuyo stock cayó al mínimo configurado o por debajo.
type StockAlert struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
	MinStock int64  `json:"min_stock"`
}
