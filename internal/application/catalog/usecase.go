package catalog

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-pos/internal/application/dto"
	"github.com/jhoicas/Tienda-pos/internal/domain"
	"github.com/jhoicas/Tienda-pos/internal/domain/entity"
	"github.com/jhoicas/Tienda-pos/internal/domain/repository"
)

// CatalogUseCase gestión del catálogo de productos: CRUD y alertas de stock
// bajo. La cantidad también se edita aquí (ajuste manual); el descuento por
// venta vive en el procesador de ventas.
type CatalogUseCase struct {
	repo repository.ProductRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func validateSaveRequest(in *dto.SaveProductRequest) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.Price.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if !entity.ValidCurrency(in.Currency) {
		return domain.ErrInvalidInput
	}
	if in.MinStock != nil && *in.MinStock < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create inserta un producto nuevo. MinStock omitido queda en 5.
func (uc *CatalogUseCase) Create(in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	if err := validateSaveRequest(&in); err != nil {
		return nil, err
	}
	minStock := int64(entity.DefaultMinStock)
	if in.MinStock != nil {
		minStock = *in.MinStock
	}
	now := time.Now()
	product := &entity.Product{
		Name:      in.Name,
		Quantity:  in.Quantity,
		Price:     in.Price,
		Currency:  in.Currency,
		ImagePath: in.ImagePath,
		MinStock:  minStock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update reemplaza todos los campos del producto (overwrite completo, no merge).
func (uc *CatalogUseCase) Update(id int64, in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	if err := validateSaveRequest(&in); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	minStock := int64(entity.DefaultMinStock)
	if in.MinStock != nil {
		minStock = *in.MinStock
	}
	product.Name = in.Name
	product.Quantity = in.Quantity
	product.Price = in.Price
	product.Currency = in.Currency
	product.ImagePath = in.ImagePath
	product.MinStock = minStock
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *CatalogUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List devuelve los productos cuyo nombre contiene el filtro (substring,
// sensible a mayúsculas). Sin filtro devuelve el catálogo completo.
func (uc *CatalogUseCase) List(filter string) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Delete elimina el producto sin condiciones. La confirmación del usuario es
// responsabilidad de la capa de presentación.
func (uc *CatalogUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

// LowStockAlerts devuelve cada producto con quantity <= min_stock. Se
// recalcula en cada llamada; al tamaño de catálogo esperado no hace falta caché.
func (uc *CatalogUseCase) LowStockAlerts() ([]dto.StockAlert, error) {
	list, err := uc.repo.LowStock()
	if err != nil {
		return nil, err
	}
	alerts := make([]dto.StockAlert, 0, len(list))
	for _, p := range list {
		alerts = append(alerts, dto.StockAlert{
			Name:     p.Name,
			Quantity: p.Quantity,
			MinStock: p.MinStock,
		})
	}
	return alerts, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Quantity:  p.Quantity,
		Price:     p.Price,
		Currency:  p.Currency,
		MinStock:  p.MinStock,
		LowStock:  p.LowStock(),
		ImagePath: p.ImagePath,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
