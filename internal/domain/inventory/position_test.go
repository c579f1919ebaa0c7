package inventory_test

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/textil-erp/internal/domain"
	"github.com/jhoicas/textil-erp/internal/domain/inventory"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeAvailable
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeAvailable(t *testing.T) {
	assert.True(t, inventory.ComputeAvailable(dec("50"), dec("10")).Equal(dec("40")))
	assert.True(t, inventory.ComputeAvailable(dec("5"), dec("5")).IsZero())
	assert.True(t, inventory.ComputeAvailable(dec("12.5"), dec("0.5")).Equal(dec("12")))
}

func TestComputeAvailable_SinDependenciaTemporal(t *testing.T) {
	// Recalcular con el mismo par (stock, reservado) siempre da lo mismo.
	for i := 0; i < 10; i++ {
		assert.True(t, inventory.ComputeAvailable(dec("33.3"), dec("11.1")).Equal(dec("22.2")))
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ClassifyStockStatus
// ──────────────────────────────────────────────────────────────────────────────

func TestClassifyStockStatus_Tabla(t *testing.T) {
	casos := []struct {
		nombre   string
		disp     string
		reorden  *decimal.Decimal
		esperado string
	}{
		{"disponible cero es agotado", "0", decPtr("15"), inventory.StatusOutOfStock},
		{"disponible negativo es agotado", "-3", nil, inventory.StatusOutOfStock},
		{"agotado ignora el punto de reorden", "0", decPtr("0"), inventory.StatusOutOfStock},
		{"en el punto de reorden es stock bajo", "15", decPtr("15"), inventory.StatusLowStock},
		{"debajo del punto de reorden es stock bajo", "10", decPtr("15"), inventory.StatusLowStock},
		{"encima del punto de reorden es stock ok", "15.01", decPtr("15"), inventory.StatusInStock},
		{"sin punto de reorden, positivo es stock ok", "0.01", nil, inventory.StatusInStock},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.esperado, inventory.ClassifyStockStatus(dec(c.disp), c.reorden))
		})
	}
}

// TestClassifyStockStatus_TotalYExhaustiva verifica con pares aleatorios que la
// función siempre devuelve exactamente uno de los tres estados y que
// disponible <= 0 siempre clasifica OUT_OF_STOCK, con o sin punto de reorden.
func TestClassifyStockStatus_TotalYExhaustiva(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	estados := map[string]bool{
		inventory.StatusOutOfStock: true,
		inventory.StatusLowStock:   true,
		inventory.StatusInStock:    true,
	}
	for i := 0; i < 500; i++ {
		available := decimal.NewFromFloat(rng.Float64()*200 - 100).Round(2)
		var reorder *decimal.Decimal
		if rng.Intn(2) == 0 {
			r := decimal.NewFromFloat(rng.Float64() * 50).Round(2)
			reorder = &r
		}
		st := inventory.ClassifyStockStatus(available, reorder)
		require.True(t, estados[st], "estado desconocido: %s", st)
		if !available.IsPositive() {
			assert.Equal(t, inventory.StatusOutOfStock, st)
		}
	}
}

// TestClassifyStockStatus_EscenarioReduccionStock: posición con stock 50,
// reservado 10 y reorden 15: disponible 40 -> IN_STOCK; al bajar el stock a 20
// (reservado igual) el disponible queda en 10 -> LOW_STOCK.
func TestClassifyStockStatus_EscenarioReduccionStock(t *testing.T) {
	reorden := decPtr("15")

	disponible := inventory.ComputeAvailable(dec("50"), dec("10"))
	assert.True(t, disponible.Equal(dec("40")))
	assert.Equal(t, inventory.StatusInStock, inventory.ClassifyStockStatus(disponible, reorden))

	disponible = inventory.ComputeAvailable(dec("20"), dec("10"))
	assert.True(t, disponible.Equal(dec("10")))
	assert.Equal(t, inventory.StatusLowStock, inventory.ClassifyStockStatus(disponible, reorden))
}

// ──────────────────────────────────────────────────────────────────────────────
// ValidateReservationChange
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateReservationChange_DeltaValido(t *testing.T) {
	nuevo, err := inventory.ValidateReservationChange(dec("50"), dec("10"), dec("5"))
	require.NoError(t, err)
	assert.True(t, nuevo.Equal(dec("15")))

	// liberar reserva
	nuevo, err = inventory.ValidateReservationChange(dec("50"), dec("10"), dec("-10"))
	require.NoError(t, err)
	assert.True(t, nuevo.IsZero())

	// reservar hasta el tope exacto del stock
	nuevo, err = inventory.ValidateReservationChange(dec("50"), dec("10"), dec("40"))
	require.NoError(t, err)
	assert.True(t, nuevo.Equal(dec("50")))
}

func TestValidateReservationChange_ExcedeStock(t *testing.T) {
	// stock 5, reservado 5: reservar una unidad más debe rechazarse.
	_, err := inventory.ValidateReservationChange(dec("5"), dec("5"), dec("1"))
	assert.ErrorIs(t, err, domain.ErrReservaExcedeStock)
}

func TestValidateReservationChange_ReservaNegativa(t *testing.T) {
	_, err := inventory.ValidateReservationChange(dec("50"), dec("10"), dec("-10.01"))
	assert.ErrorIs(t, err, domain.ErrReservaNegativa)
}

// ──────────────────────────────────────────────────────────────────────────────
// ValidateStockChange
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateStockChange(t *testing.T) {
	nuevo, err := inventory.ValidateStockChange(dec("50"), dec("10"), dec("-30"))
	require.NoError(t, err)
	assert.True(t, nuevo.Equal(dec("20")))

	// no puede quedar por debajo de lo reservado
	_, err = inventory.ValidateStockChange(dec("50"), dec("10"), dec("-41"))
	assert.ErrorIs(t, err, domain.ErrReservaExcedeStock)

	// ni negativo
	_, err = inventory.ValidateStockChange(dec("5"), dec("0"), dec("-6"))
	assert.ErrorIs(t, err, domain.ErrStockInsuficiente)
}
