package sales

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-pos/internal/application/dto"
	"github.com/jhoicas/Tienda-pos/internal/domain"
	"github.com/jhoicas/Tienda-pos/internal/domain/entity"
	"github.com/jhoicas/Tienda-pos/internal/domain/repository"
)

// SaleUseCase procesa ventas contra el stock actual: cotiza sin tocar stock y
// confirma descontando stock e insertando la venta como unidad atómica.
type SaleUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	configRepo  repository.ConfigurationRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	configRepo repository.ConfigurationRepository,
) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, productRepo: productRepo, configRepo: configRepo}
}

// Quote calcula cantidad × precio sin tocar stock. Para productos en USD
// añade el equivalente en CUP al tipo de cambio vigente.
func (uc *SaleUseCase) Quote(productID, quantity int64) (*dto.QuoteResponse, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	total := product.Price.Mul(decimal.NewFromInt(quantity))
	out := &dto.QuoteResponse{
		ProductID: productID,
		Quantity:  quantity,
		Total:     total,
		Currency:  product.Currency,
	}
	if product.Currency == entity.CurrencyUSD {
		cfg, err := uc.configRepo.Get()
		if err != nil {
			return nil, err
		}
		if cfg != nil {
			cup := total.Mul(cfg.ExchangeRate)
			out.TotalCUP = &cup
		}
	}
	return out, nil
}

// PostSale confirma una venta: relee precio y stock con la fila bloqueada,
// rechaza si la cantidad supera el stock disponible, y descuenta stock e
// inserta la venta dentro de la misma transacción (ambas persisten o ninguna).
// La fecha se asigna al confirmar. No hay deduplicación: repetir la llamada
// registra una segunda venta independiente.
func (uc *SaleUseCase) PostSale(ctx context.Context, sellerID int64, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}

	var sale *entity.Sale
	var currency string
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		// Bloquea la fila del producto: el precio se lee aquí (no de una
		// cotización previa) y el chequeo de stock no puede quedar obsoleto
		// antes del descuento.
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if in.Quantity > product.Quantity {
			return &domain.InsufficientStockError{Available: product.Quantity}
		}

		now := time.Now()
		if err := productRepo.UpdateQuantity(product.ID, product.Quantity-in.Quantity); err != nil {
			return err
		}
		sale = &entity.Sale{
			ProductID:       product.ID,
			Quantity:        in.Quantity,
			Total:           product.Price.Mul(decimal.NewFromInt(in.Quantity)),
			SoldAt:          now,
			CustomerName:    strings.TrimSpace(in.CustomerName),
			CustomerID:      strings.TrimSpace(in.CustomerID),
			CustomerAddress: strings.TrimSpace(in.CustomerAddress),
			SellerID:        sellerID,
		}
		currency = product.Currency
		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}

	return &dto.SaleResponse{
		ID:              sale.ID,
		ProductID:       sale.ProductID,
		Quantity:        sale.Quantity,
		Total:           sale.Total,
		Currency:        currency,
		SoldAt:          dto.FormatTimestamp(sale.SoldAt),
		CustomerName:    sale.CustomerName,
		CustomerID:      sale.CustomerID,
		CustomerAddress: sale.CustomerAddress,
		SellerID:        sale.SellerID,
	}, nil
}
