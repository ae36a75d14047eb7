package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta ya confirmada. Es inmutable: no existe edición ni
// borrado; se crea únicamente como efecto pareado del descuento de stock.
type Sale struct {
	ID              int64
	ProductID       int64
	Quantity        int64
	Total           decimal.Decimal // cantidad × precio unitario al momento de la venta
	SoldAt          time.Time
	CustomerName    string
	CustomerID      string
	CustomerAddress string
	SellerID        int64
}
