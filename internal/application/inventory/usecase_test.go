package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/textil-erp/internal/application/dto"
	appinv "github.com/jhoicas/textil-erp/internal/application/inventory"
	"github.com/jhoicas/textil-erp/internal/domain"
	"github.com/jhoicas/textil-erp/internal/domain/entity"
	domaininv "github.com/jhoicas/textil-erp/internal/domain/inventory"
	"github.com/jhoicas/textil-erp/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeInvRepo struct {
	positions map[string]*entity.LocationInventory
}

func newFakeInvRepo() *fakeInvRepo {
	return &fakeInvRepo{positions: make(map[string]*entity.LocationInventory)}
}

func (r *fakeInvRepo) GetByID(id string) (*entity.LocationInventory, error) {
	inv, ok := r.positions[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInvRepo) GetForUpdate(id string) (*entity.LocationInventory, error) {
	return r.GetByID(id)
}

func (r *fakeInvRepo) Get(companyID, locationID, productID string) (*entity.LocationInventory, error) {
	for _, inv := range r.positions {
		if inv.CompanyID == companyID && inv.LocationID == locationID && inv.ProductID == productID {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeInvRepo) Create(inv *entity.LocationInventory) error {
	cp := *inv
	r.positions[inv.ID] = &cp
	return nil
}

func (r *fakeInvRepo) Upsert(inv *entity.LocationInventory) error {
	cp := *inv
	r.positions[inv.ID] = &cp
	return nil
}

func (r *fakeInvRepo) ListDetailed(companyID string, f repository.InventoryFilters) ([]repository.PositionRow, error) {
	var out []repository.PositionRow
	for _, inv := range r.positions {
		if inv.CompanyID != companyID {
			continue
		}
		if f.LocationID != "" && inv.LocationID != f.LocationID {
			continue
		}
		if f.ProductID != "" && inv.ProductID != f.ProductID {
			continue
		}
		out = append(out, repository.PositionRow{Inventory: *inv})
	}
	return out, nil
}

func (r *fakeInvRepo) Delete(id string) error {
	delete(r.positions, id)
	return nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *fakeProductRepo) GetByCompanyAndSKU(string, string) (*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) UpdateCostPrice(id string, cost decimal.Decimal) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.CostPrice = cost
	return nil
}
func (r *fakeProductRepo) ListByCompany(string, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) Delete(id string) error { delete(r.products, id); return nil }

type fakeLocationRepo struct {
	locations map[string]*entity.Location
}

func (r *fakeLocationRepo) Create(l *entity.Location) error { r.locations[l.ID] = l; return nil }
func (r *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	return r.locations[id], nil
}
func (r *fakeLocationRepo) Update(l *entity.Location) error { r.locations[l.ID] = l; return nil }
func (r *fakeLocationRepo) ListByCompany(string, int, int) ([]*entity.Location, error) {
	return nil, nil
}
func (r *fakeLocationRepo) Delete(id string) error { delete(r.locations, id); return nil }

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) ListByInventory(companyID, inventoryID string, _, _ int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := len(r.movements) - 1; i >= 0; i-- {
		m := r.movements[i]
		if m.CompanyID == companyID && m.InventoryID == inventoryID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeTxRunner struct {
	invRepo      *fakeInvRepo
	productRepo  *fakeProductRepo
	movementRepo *fakeMovementRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	invRepo repository.LocationInventoryRepository,
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	return fn(r.invRepo, r.productRepo, r.movementRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

const (
	testCompanyID = "co-1"
	testLocID     = "loc-1"
	testProductID = "prod-1"
	testUserID    = "user-1"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func buildUseCase(t *testing.T) (*appinv.UseCase, *fakeInvRepo, *fakeProductRepo, *fakeMovementRepo) {
	t.Helper()
	invRepo := newFakeInvRepo()
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		testProductID: {
			ID:        testProductID,
			CompanyID: testCompanyID,
			SKU:       "TELA-DRIL-AZ",
			Name:      "Dril azul índigo",
			CostPrice: dec("10"),
		},
	}}
	locRepo := &fakeLocationRepo{locations: map[string]*entity.Location{
		testLocID: {ID: testLocID, CompanyID: testCompanyID, Name: "Bodega insumos", IsHQ: true},
	}}
	movementRepo := &fakeMovementRepo{}
	runner := &fakeTxRunner{invRepo: invRepo, productRepo: productRepo, movementRepo: movementRepo}
	return appinv.NewUseCase(runner, invRepo, productRepo, locRepo, movementRepo), invRepo, productRepo, movementRepo
}

func seedPosition(t *testing.T, repo *fakeInvRepo, stock, reserved string, reorder *decimal.Decimal) string {
	t.Helper()
	id := uuid.New().String()
	require.NoError(t, repo.Create(&entity.LocationInventory{
		ID:               id,
		CompanyID:        testCompanyID,
		ProductID:        testProductID,
		LocationID:       testLocID,
		StockQuantity:    dec(stock),
		ReservedQuantity: dec(reserved),
		ReorderLevel:     reorder,
		UpdatedAt:        time.Now(),
	}))
	return id
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateInventory
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateInventory_OK(t *testing.T) {
	uc, _, _, _ := buildUseCase(t)

	resp, err := uc.CreateInventory(testCompanyID, dto.CreateInventoryRequest{
		ProductID:     testProductID,
		LocationID:    testLocID,
		StockQuantity: dec("50"),
		ReorderLevel:  decPtr("15"),
	})
	require.NoError(t, err)
	assert.True(t, resp.ReservedQuantity.IsZero(), "la reserva nace en cero")
	assert.True(t, resp.AvailableQuantity.Equal(dec("50")))
	assert.Equal(t, domaininv.StatusInStock, resp.StockStatus)
}

func TestCreateInventory_PosicionDuplicada(t *testing.T) {
	uc, invRepo, _, _ := buildUseCase(t)
	seedPosition(t, invRepo, "10", "0", nil)

	_, err := uc.CreateInventory(testCompanyID, dto.CreateInventoryRequest{
		ProductID:     testProductID,
		LocationID:    testLocID,
		StockQuantity: dec("5"),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateInventory_StockNegativo(t *testing.T) {
	uc, _, _, _ := buildUseCase(t)
	_, err := uc.CreateInventory(testCompanyID, dto.CreateInventoryRequest{
		ProductID:     testProductID,
		LocationID:    testLocID,
		StockQuantity: dec("-1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// AdjustStock
// ──────────────────────────────────────────────────────────────────────────────

// TestAdjustStock_EscenarioReduccion: stock 50 / reservado 10 / reorden 15:
// disponible 40 (IN_STOCK); tras bajar el stock a 20 el disponible queda en 10
// y la posición pasa a LOW_STOCK.
func TestAdjustStock_EscenarioReduccion(t *testing.T) {
	uc, invRepo, _, _ := buildUseCase(t)
	id := seedPosition(t, invRepo, "50", "10", decPtr("15"))
	ctx := context.Background()

	resp, err := uc.AdjustStock(ctx, testCompanyID, testUserID, id, dto.AdjustStockRequest{Delta: dec("-30")})
	require.NoError(t, err)
	assert.True(t, resp.StockQuantity.Equal(dec("20")))
	assert.True(t, resp.AvailableQuantity.Equal(dec("10")))
	assert.Equal(t, domaininv.StatusLowStock, resp.StockStatus)
}

func TestAdjustStock_NoPuedeQuedarBajoLoReservado(t *testing.T) {
	uc, invRepo, _, _ := buildUseCase(t)
	id := seedPosition(t, invRepo, "50", "10", nil)

	_, err := uc.AdjustStock(context.Background(), testCompanyID, testUserID, id, dto.AdjustStockRequest{Delta: dec("-41")})
	assert.ErrorIs(t, err, domain.ErrReservaExcedeStock)

	// La posición no cambió.
	inv, _ := invRepo.GetByID(id)
	assert.True(t, inv.StockQuantity.Equal(dec("50")))
}

func TestAdjustStock_EntradaConCostoRecalculaPromedio(t *testing.T) {
	uc, invRepo, productRepo, _ := buildUseCase(t)
	id := seedPosition(t, invRepo, "100", "0", nil)

	// 100 unidades a costo 10 + 50 unidades a costo 16 => promedio 12.
	_, err := uc.AdjustStock(context.Background(), testCompanyID, testUserID, id, dto.AdjustStockRequest{
		Delta:    dec("50"),
		UnitCost: decPtr("16"),
	})
	require.NoError(t, err)

	p, _ := productRepo.GetByID(testProductID)
	assert.True(t, p.CostPrice.Equal(dec("12")),
		"costo promedio ponderado: (100*10 + 50*16) / 150 = 12")
}

// TestAdjustStock_DejaMovimientoDeAuditoria: cada ajuste deja exactamente un
// movimiento con el delta tal como se aplicó y el usuario que lo ejecutó.
func TestAdjustStock_DejaMovimientoDeAuditoria(t *testing.T) {
	uc, invRepo, _, _ := buildUseCase(t)
	id := seedPosition(t, invRepo, "100", "0", nil)
	ctx := context.Background()

	_, err := uc.AdjustStock(ctx, testCompanyID, testUserID, id, dto.AdjustStockRequest{
		Delta:    dec("50"),
		UnitCost: decPtr("16"),
		Notes:    "compra lote 42",
	})
	require.NoError(t, err)
	_, err = uc.AdjustStock(ctx, testCompanyID, testUserID, id, dto.AdjustStockRequest{Delta: dec("-20")})
	require.NoError(t, err)

	movements, err := uc.ListMovements(testCompanyID, id, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, movements, 2)

	// Más recientes primero.
	assert.Equal(t, entity.MovementTypeOut, movements[0].Type)
	assert.True(t, movements[0].Quantity.Equal(dec("-20")))
	assert.Equal(t, entity.MovementTypeIn, movements[1].Type)
	assert.True(t, movements[1].Quantity.Equal(dec("50")))
	assert.Equal(t, "compra lote 42", movements[1].Notes)
	assert.Equal(t, testUserID, movements[1].CreatedBy)

	require.NotNil(t, movements[1].UnitCost)
	assert.True(t, movements[1].UnitCost.Equal(dec("16")))
}

func TestListMovements_PosicionDeOtraEmpresa(t *testing.T) {
	uc, invRepo, _, _ := buildUseCase(t)
	id := seedPosition(t, invRepo, "10", "0", nil)

	_, err := uc.ListMovements("otra-empresa", id, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAdjustStock_DeltaCero(t *testing.T) {
	uc, invRepo, _, _ := buildUseCase(t)
	id := seedPosition(t, invRepo, "10", "0", nil)

	_, err := uc.AdjustStock(context.Background(), testCompanyID, testUserID, id, dto.AdjustStockRequest{Delta: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// ChangeReservation
// ──────────────────────────────────────────────────────────────────────────────

func TestChangeReservation_ReservaYLibera(t *testing.T) {
	uc, invRepo, _, _ := buildUseCase(t)
	id := seedPosition(t, invRepo, "50", "10", nil)
	ctx := context.Background()

	resp, err := uc.ChangeReservation(ctx, testCompanyID, id, dto.ChangeReservationRequest{Delta: dec("15")})
	require.NoError(t, err)
	assert.True(t, resp.ReservedQuantity.Equal(dec("25")))
	assert.True(t, resp.AvailableQuantity.Equal(dec("25")))

	resp, err = uc.ChangeReservation(ctx, testCompanyID, id, dto.ChangeReservationRequest{Delta: dec("-25")})
	require.NoError(t, err)
	assert.True(t, resp.ReservedQuantity.IsZero())
	assert.True(t, resp.AvailableQuantity.Equal(dec("50")))
}

// TestChangeReservation_ExcedeStock: stock 5 y reservado 5: reservar una unidad
// más debe rechazarse sin tocar la posición.
func TestChangeReservation_ExcedeStock(t *testing.T) {
	uc, invRepo, _, _ := buildUseCase(t)
	id := seedPosition(t, invRepo, "5", "5", nil)

	_, err := uc.ChangeReservation(context.Background(), testCompanyID, id, dto.ChangeReservationRequest{Delta: dec("1")})
	assert.ErrorIs(t, err, domain.ErrReservaExcedeStock)

	inv, _ := invRepo.GetByID(id)
	assert.True(t, inv.ReservedQuantity.Equal(dec("5")))
}

func TestChangeReservation_PosicionDeOtraEmpresa(t *testing.T) {
	uc, invRepo, _, _ := buildUseCase(t)
	id := seedPosition(t, invRepo, "50", "0", nil)

	_, err := uc.ChangeReservation(context.Background(), "otra-empresa", id, dto.ChangeReservationRequest{Delta: dec("1")})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// DeleteInventory
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteInventory(t *testing.T) {
	uc, invRepo, _, _ := buildUseCase(t)

	conStock := seedPosition(t, invRepo, "10", "0", nil)
	assert.ErrorIs(t, uc.DeleteInventory(testCompanyID, conStock), domain.ErrConflict,
		"no se borra una posición con existencias")

	vacia := seedPosition(t, invRepo, "0", "0", nil)
	require.NoError(t, uc.DeleteInventory(testCompanyID, vacia))
	inv, _ := invRepo.GetByID(vacia)
	assert.Nil(t, inv)
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestList_EnriqueceConDisponibleYEstado(t *testing.T) {
	uc, invRepo, _, _ := buildUseCase(t)
	seedPosition(t, invRepo, "5", "5", decPtr("3"))

	items, err := uc.List(testCompanyID, repository.InventoryFilters{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].AvailableQuantity.IsZero())
	assert.Equal(t, domaininv.StatusOutOfStock, items[0].StockStatus)
}
