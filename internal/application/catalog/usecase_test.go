package catalog_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-pos/internal/application/catalog"
	"github.com/jhoicas/Tienda-pos/internal/application/dto"
	"github.com/jhoicas/Tienda-pos/internal/domain"
	"github.com/jhoicas/Tienda-pos/internal/domain/entity"
)

// fakeProductRepo repositorio en memoria con la misma semántica que el real:
// (nil, nil) cuando no existe, filtro por substring sensible a mayúsculas.
type fakeProductRepo struct {
	nextID   int64
	products map[int64]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{nextID: 1, products: make(map[int64]*entity.Product)}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	p.ID = f.nextID
	f.nextID++
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

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

func (f *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) UpdateQuantity(id, quantity int64) error {
	if p, ok := f.products[id]; ok {
		p.Quantity = quantity
	}
	return nil
}

func (f *fakeProductRepo) List(filter string) ([]*entity.Product, error) {
	var out []*entity.Product
	for id := int64(1); id < f.nextID; id++ {
		p, ok := f.products[id]
		if !ok {
			continue
		}
		if filter == "" || strings.Contains(p.Name, filter) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) LowStock() ([]*entity.Product, error) {
	var out []*entity.Product
	for id := int64(1); id < f.nextID; id++ {
		p, ok := f.products[id]
		if !ok {
			continue
		}
		if p.Quantity <= p.MinStock {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Delete(id int64) error {
	delete(f.products, id)
	return nil
}

func saveReq(name string, qty int64, price string, currency string) dto.SaveProductRequest {
	return dto.SaveProductRequest{
		Name:     name,
		Quantity: qty,
		Price:    decimal.RequireFromString(price),
		Currency: currency,
	}
}

func TestCreate_YList_RoundTrip(t *testing.T) {
	uc := catalog.NewCatalogUseCase(newFakeProductRepo())

	created, err := uc.Create(saveReq("Arroz", 10, "2.00", "CUP"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, int64(5), created.MinStock, "min_stock omitido debe quedar en 5")

	list, err := uc.List("")
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Arroz", list.Items[0].Name)
	assert.True(t, list.Items[0].Price.Equal(decimal.RequireFromString("2.00")))
}

func TestCreate_NombreVacio_EsInvalido(t *testing.T) {
	uc := catalog.NewCatalogUseCase(newFakeProductRepo())

	_, err := uc.Create(saveReq("   ", 1, "1.00", "CUP"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_MonedaDesconocida_EsInvalida(t *testing.T) {
	uc := catalog.NewCatalogUseCase(newFakeProductRepo())

	_, err := uc.Create(saveReq("Arroz", 1, "1.00", "EUR"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_CantidadNegativa_EsInvalida(t *testing.T) {
	uc := catalog.NewCatalogUseCase(newFakeProductRepo())

	_, err := uc.Create(saveReq("Arroz", -1, "1.00", "CUP"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_ReemplazaTodosLosCampos(t *testing.T) {
	uc := catalog.NewCatalogUseCase(newFakeProductRepo())

	created, err := uc.Create(saveReq("Arroz", 10, "2.00", "CUP"))
	require.NoError(t, err)

	minStock := int64(3)
	in := saveReq("Frijoles", 7, "3.50", "USD")
	in.MinStock = &minStock
	updated, err := uc.Update(created.ID, in)
	require.NoError(t, err)

	assert.Equal(t, "Frijoles", updated.Name)
	assert.Equal(t, int64(7), updated.Quantity)
	assert.Equal(t, "USD", updated.Currency)
	assert.Equal(t, int64(3), updated.MinStock)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("3.50")))
}

func TestUpdate_ProductoInexistente_RetornaNotFound(t *testing.T) {
	uc := catalog.NewCatalogUseCase(newFakeProductRepo())

	_, err := uc.Update(99, saveReq("Arroz", 1, "1.00", "CUP"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_FiltraPorSubstringSensibleAMayusculas(t *testing.T) {
	uc := catalog.NewCatalogUseCase(newFakeProductRepo())

	_, err := uc.Create(saveReq("Refresco", 4, "1.00", "CUP"))
	require.NoError(t, err)
	_, err = uc.Create(saveReq("Cafe", 4, "1.00", "CUP"))
	require.NoError(t, err)

	list, err := uc.List("fre")
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Refresco", list.Items[0].Name)

	// El filtro distingue mayúsculas: "FRE" no coincide con "Refresco".
	list, err = uc.List("FRE")
	require.NoError(t, err)
	assert.Equal(t, 0, list.Total)
}

func TestDelete_EliminaYListaVacia(t *testing.T) {
	uc := catalog.NewCatalogUseCase(newFakeProductRepo())

	created, err := uc.Create(saveReq("Arroz", 10, "2.00", "CUP"))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	list, err := uc.List("")
	require.NoError(t, err)
	assert.Equal(t, 0, list.Total)

	_, err = uc.GetByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLowStockAlerts_IncluyeElLimiteExacto(t *testing.T) {
	uc := catalog.NewCatalogUseCase(newFakeProductRepo())

	low := int64(5)
	inBajo := saveReq("Azucar", 5, "1.00", "CUP") // quantity == min_stock
	inBajo.MinStock = &low
	_, err := uc.Create(inBajo)
	require.NoError(t, err)

	_, err = uc.Create(saveReq("Sal", 6, "1.00", "CUP")) // por encima del mínimo
	require.NoError(t, err)

	alerts, err := uc.LowStockAlerts()
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "Azucar", alerts[0].Name)
	assert.Equal(t, int64(5), alerts[0].Quantity)
	assert.Equal(t, int64(5), alerts[0].MinStock)

	// El listado marca los mismos productos con low_stock, con el límite
	// exacto incluido.
	list, err := uc.List("")
	require.NoError(t, err)
	require.Equal(t, 2, list.Total)
	assert.True(t, list.Items[0].LowStock, "quantity == min_stock cuenta como stock bajo")
	assert.False(t, list.Items[1].LowStock)
}

func TestCreate_MinStockExplicitoCero_SeRespeta(t *testing.T) {
	uc := catalog.NewCatalogUseCase(newFakeProductRepo())

	zero := int64(0)
	in := saveReq("Pan", 0, "0.50", "CUP")
	in.MinStock = &zero
	created, err := uc.Create(in)
	require.NoError(t, err)
	assert.Equal(t, int64(0), created.MinStock)

	// quantity 0 <= min_stock 0: sigue contando como stock bajo.
	alerts, err := uc.LowStockAlerts()
	require.NoError(t, err)
	assert.Len(t, alerts, 1)
}

func TestValidCurrency(t *testing.T) {
	assert.True(t, entity.ValidCurrency("USD"))
	assert.True(t, entity.ValidCurrency("CUP"))
	assert.False(t, entity.ValidCurrency("usd"))
	assert.False(t, entity.ValidCurrency(""))
}
