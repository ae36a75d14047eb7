package sales_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-pos/internal/application/dto"
	"github.com/jhoicas/Tienda-pos/internal/application/sales"
	"github.com/jhoicas/Tienda-pos/internal/domain"
	"github.com/jhoicas/Tienda-pos/internal/domain/entity"
	"github.com/jhoicas/Tienda-pos/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[int64]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error { panic("no usado") }

func (f *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) GetForUpdate(id int64) (*entity.Product, error) {
	return f.GetByID(id)
}

func (f *fakeProductRepo) Update(p *entity.Product) error { panic("no usado") }

func (f *fakeProductRepo) UpdateQuantity(id, quantity int64) error {
	p, ok := f.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	return nil
}

func (f *fakeProductRepo) List(string) ([]*entity.Product, error) { panic("no usado") }
func (f *fakeProductRepo) LowStock() ([]*entity.Product, error)   { panic("no usado") }
func (f *fakeProductRepo) Delete(int64) error                     { panic("no usado") }

type fakeSaleRepo struct {
	nextID int64
	sales  []*entity.Sale
}

func (f *fakeSaleRepo) Create(s *entity.Sale) error {
	f.nextID++
	s.ID = f.nextID
	cp := *s
	f.sales = append(f.sales, &cp)
	return nil
}

type fakeConfigRepo struct {
	cfg *entity.Configuration
}

func (f *fakeConfigRepo) Get() (*entity.Configuration, error) { return f.cfg, nil }
func (f *fakeConfigRepo) UpdateExchangeRate(decimal.Decimal) error {
	panic("no usado")
}

// fakeTxRunner ejecuta la función directamente sobre los fakes. No simula
// rollback: los tests de atomicidad real viven en la capa de postgres.
type fakeTxRunner struct {
	productRepo *fakeProductRepo
	saleRepo    *fakeSaleRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	return fn(f.productRepo, f.saleRepo)
}

func newFixture(products ...*entity.Product) (*sales.SaleUseCase, *fakeProductRepo, *fakeSaleRepo) {
	pr := &fakeProductRepo{products: make(map[int64]*entity.Product)}
	for _, p := range products {
		pr.products[p.ID] = p
	}
	sr := &fakeSaleRepo{}
	cr := &fakeConfigRepo{cfg: &entity.Configuration{ExchangeRate: decimal.RequireFromString("24.0")}}
	uc := sales.NewSaleUseCase(&fakeTxRunner{productRepo: pr, saleRepo: sr}, pr, cr)
	return uc, pr, sr
}

func product(id int64, name string, qty int64, price, currency string) *entity.Product {
	return &entity.Product{
		ID:       id,
		Name:     name,
		Quantity: qty,
		Price:    decimal.RequireFromString(price),
		Currency: currency,
		MinStock: entity.DefaultMinStock,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// PostSale
// ──────────────────────────────────────────────────────────────────────────────

func TestPostSale_DescuentaStockYRegistraVenta(t *testing.T) {
	uc, pr, sr := newFixture(product(1, "Arroz", 10, "2.00", "CUP"))

	out, err := uc.PostSale(context.Background(), 7, dto.CreateSaleRequest{
		ProductID:    1,
		Quantity:     3,
		CustomerName: "Maria",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, int64(3), out.Quantity)
	assert.True(t, out.Total.Equal(decimal.RequireFromString("6.00")),
		"total debe ser cantidad × precio = 6.00, fue %s", out.Total)
	assert.Equal(t, "CUP", out.Currency)
	assert.Equal(t, int64(7), out.SellerID)
	assert.Equal(t, "Maria", out.CustomerName)
	assert.NotEmpty(t, out.SoldAt)

	assert.Equal(t, int64(7), pr.products[1].Quantity, "el stock debe quedar en 10-3=7")
	require.Len(t, sr.sales, 1)
	assert.Equal(t, int64(1), sr.sales[0].ProductID)
}

func TestPostSale_StockInsuficiente_ReportaDisponible(t *testing.T) {
	uc, pr, sr := newFixture(product(1, "Arroz", 7, "2.00", "CUP"))

	_, err := uc.PostSale(context.Background(), 7, dto.CreateSaleRequest{ProductID: 1, Quantity: 8})

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int64(7), stockErr.Available)

	// Nada cambió: ni stock ni ventas.
	assert.Equal(t, int64(7), pr.products[1].Quantity)
	assert.Empty(t, sr.sales)
}

func TestPostSale_VentaExacta_DejaStockEnCero(t *testing.T) {
	uc, pr, _ := newFixture(product(1, "Arroz", 5, "2.00", "CUP"))

	_, err := uc.PostSale(context.Background(), 1, dto.CreateSaleRequest{ProductID: 1, Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(0), pr.products[1].Quantity)
}

func TestPostSale_ProductoInexistente_RetornaNotFound(t *testing.T) {
	uc, _, _ := newFixture()

	_, err := uc.PostSale(context.Background(), 1, dto.CreateSaleRequest{ProductID: 99, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostSale_CantidadMenorQueUno_EsInvalida(t *testing.T) {
	uc, _, _ := newFixture(product(1, "Arroz", 10, "2.00", "CUP"))

	_, err := uc.PostSale(context.Background(), 1, dto.CreateSaleRequest{ProductID: 1, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.PostSale(context.Background(), 1, dto.CreateSaleRequest{ProductID: 1, Quantity: -3})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Repetir la llamada no deduplica: son dos ventas independientes.
func TestPostSale_Repetida_RegistraDosVentas(t *testing.T) {
	uc, pr, sr := newFixture(product(1, "Arroz", 10, "2.00", "CUP"))

	for i := 0; i < 2; i++ {
		_, err := uc.PostSale(context.Background(), 1, dto.CreateSaleRequest{ProductID: 1, Quantity: 2})
		require.NoError(t, err)
	}

	assert.Equal(t, int64(6), pr.products[1].Quantity)
	assert.Len(t, sr.sales, 2)
}

func TestPostSale_RecortaEspaciosDelCliente(t *testing.T) {
	uc, _, sr := newFixture(product(1, "Arroz", 10, "2.00", "CUP"))

	_, err := uc.PostSale(context.Background(), 1, dto.CreateSaleRequest{
		ProductID:    1,
		Quantity:     1,
		CustomerName: "  Maria  ",
		CustomerID:   " 99010112345 ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria", sr.sales[0].CustomerName)
	assert.Equal(t, "99010112345", sr.sales[0].CustomerID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Quote
// ──────────────────────────────────────────────────────────────────────────────

func TestQuote_ProductoCUP_SinConversion(t *testing.T) {
	uc, pr, _ := newFixture(product(1, "Arroz", 10, "2.50", "CUP"))

	out, err := uc.Quote(1, 4)
	require.NoError(t, err)

	assert.True(t, out.Total.Equal(decimal.RequireFromString("10.00")))
	assert.Equal(t, "CUP", out.Currency)
	assert.Nil(t, out.TotalCUP, "producto en CUP no lleva equivalente")
	assert.Equal(t, int64(10), pr.products[1].Quantity, "cotizar no toca stock")
}

func TestQuote_ProductoUSD_IncluyeEquivalenteCUP(t *testing.T) {
	uc, _, _ := newFixture(product(1, "Aceite", 10, "3.00", "USD"))

	out, err := uc.Quote(1, 2)
	require.NoError(t, err)

	assert.True(t, out.Total.Equal(decimal.RequireFromString("6.00")))
	require.NotNil(t, out.TotalCUP)
	assert.True(t, out.TotalCUP.Equal(decimal.RequireFromString("144.00")),
		"6.00 USD × 24.0 = 144.00 CUP, fue %s", out.TotalCUP)
}

func TestQuote_ProductoInexistente_RetornaNotFound(t *testing.T) {
	uc, _, _ := newFixture()

	_, err := uc.Quote(99, 1)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestQuote_CantidadInvalida(t *testing.T) {
	uc, _, _ := newFixture(product(1, "Arroz", 10, "2.00", "CUP"))

	_, err := uc.Quote(1, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
