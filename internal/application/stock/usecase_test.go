package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/application/stock"
	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeStore simula la base: productos, ledger y entradas por ubicación.
type fakeStore struct {
	products    map[int64]*entity.Product
	movements   []*entity.StockMovement
	entries     map[int64]*entity.ProductStock
	nextMovID   int64
	nextEntryID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:    make(map[int64]*entity.Product),
		entries:     make(map[int64]*entity.ProductStock),
		nextMovID:   1,
		nextEntryID: 1,
	}
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	c.nextMovID = s.nextMovID
	c.nextEntryID = s.nextEntryID
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	for _, m := range s.movements {
		cm := *m
		c.movements = append(c.movements, &cm)
	}
	for id, e := range s.entries {
		ce := *e
		c.entries[id] = &ce
	}
	return c
}

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	id := int64(len(r.s.products) + 1)
	p.ID = id
	cp := *p
	r.s.products[id] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id int64) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) UpdateStock(id int64, stockVal int, modifiedBy int64) error {
	p := r.s.products[id]
	p.Stock = stockVal
	p.ModifiedBy = &modifiedBy
	return nil
}

func (r *fakeProductRepo) Delete(id int64) error {
	delete(r.s.products, id)
	return nil
}

type fakeMovementRepo struct{ s *fakeStore }

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	m.ID = r.s.nextMovID
	r.s.nextMovID++
	cm := *m
	r.s.movements = append(r.s.movements, &cm)
	return nil
}

func (r *fakeMovementRepo) List() ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.s.movements {
		cm := *m
		out = append(out, &cm)
	}
	return out, nil
}

func (r *fakeMovementRepo) ListByProduct(productID int64) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			cm := *m
			out = append(out, &cm)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) SumDeltaByProduct(productID int64) (int, error) {
	sum := 0
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			sum += m.Delta()
		}
	}
	return sum, nil
}

type fakeEntryRepo struct{ s *fakeStore }

func (r *fakeEntryRepo) Create(e *entity.ProductStock) error {
	e.ID = r.s.nextEntryID
	r.s.nextEntryID++
	ce := *e
	r.s.entries[e.ID] = &ce
	return nil
}

func (r *fakeEntryRepo) GetByID(id int64) (*entity.ProductStock, error) {
	e, ok := r.s.entries[id]
	if !ok {
		return nil, nil
	}
	ce := *e
	return &ce, nil
}

func (r *fakeEntryRepo) List() ([]*entity.ProductStock, error) {
	var out []*entity.ProductStock
	for _, e := range r.s.entries {
		ce := *e
		out = append(out, &ce)
	}
	return out, nil
}

func (r *fakeEntryRepo) ListByProduct(productID int64) ([]*entity.ProductStock, error) {
	var out []*entity.ProductStock
	for _, e := range r.s.entries {
		if e.ProductID == productID {
			ce := *e
			out = append(out, &ce)
		}
	}
	return out, nil
}

func (r *fakeEntryRepo) Update(e *entity.ProductStock) error {
	ce := *e
	r.s.entries[e.ID] = &ce
	return nil
}

func (r *fakeEntryRepo) Delete(id int64) error {
	delete(r.s.entries, id)
	return nil
}

func (r *fakeEntryRepo) SumQuantityByProduct(productID int64) (int, error) {
	sum := 0
	for _, e := range r.s.entries {
		if e.ProductID == productID {
			sum += e.Quantity
		}
	}
	return sum, nil
}

// fakeTxRunner imita la semántica transaccional: si el callback falla, el
// estado queda exactamente como antes.
type fakeTxRunner struct{ s *fakeStore }

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.StockMovementRepository,
	entryRepo repository.ProductStockRepository,
	productRepo repository.ProductRepository,
) error) error {
	snapshot := r.s.clone()
	err := fn(&fakeMovementRepo{r.s}, &fakeEntryRepo{r.s}, &fakeProductRepo{r.s})
	if err != nil {
		*r.s = *snapshot
	}
	return err
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const testUserID = int64(7)

// newLedger siembra un producto igual que lo deja el alta real: si nace con
// stock > 0, ese stock tiene su movimiento "add" en el ledger.
func newLedger(t *testing.T, initialStock int) (*stock.LedgerUseCase, *fakeStore) {
	t.Helper()
	s := newFakeStore()
	s.products[1] = &entity.Product{ID: 1, Name: "Silla rústica", Category: "Sillas", Stock: initialStock}
	if initialStock > 0 {
		s.movements = append(s.movements, &entity.StockMovement{
			ID: s.nextMovID, ProductID: 1, Type: entity.MovementTypeAdd,
			Quantity: initialStock, Reason: "stock inicial",
		})
		s.nextMovID++
	}
	uc := stock.NewLedgerUseCase(
		&fakeTxRunner{s},
		&fakeProductRepo{s},
		&fakeMovementRepo{s},
		&fakeEntryRepo{s},
	)
	return uc, s
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }
func strPtr(v string) *string { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// RegisterMovement
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_AddIncrementaStock(t *testing.T) {
	uc, s := newLedger(t, 10)

	out, err := uc.RegisterMovement(context.Background(), testUserID, dto.RegisterMovementRequest{
		ProductID: 1, Type: entity.MovementTypeAdd, Quantity: 5, Reason: "producción",
	})
	require.NoError(t, err)

	assert.Equal(t, 15, s.products[1].Stock, "el agregado debe subir en la cantidad del movimiento")
	assert.Equal(t, entity.MovementTypeAdd, out.Type)
	assert.Len(t, s.movements, 1, "el movimiento debe quedar en el ledger")
	require.NotNil(t, s.movements[0].CreatedBy)
	assert.Equal(t, testUserID, *s.movements[0].CreatedBy)
}

func TestRegisterMovement_SubtractDecrementaStock(t *testing.T) {
	uc, s := newLedger(t, 10)

	_, err := uc.RegisterMovement(context.Background(), testUserID, dto.RegisterMovementRequest{
		ProductID: 1, Type: entity.MovementTypeSubtract, Quantity: 4, Reason: "venta",
	})
	require.NoError(t, err)
	assert.Equal(t, 6, s.products[1].Stock)
}

func TestRegisterMovement_StockInsuficiente_NoEscribeNada(t *testing.T) {
	uc, s := newLedger(t, 10)

	_, err := uc.RegisterMovement(context.Background(), testUserID, dto.RegisterMovementRequest{
		ProductID: 1, Type: entity.MovementTypeSubtract, Quantity: 15, Reason: "venta",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 10, s.products[1].Stock, "el agregado no debe cambiar tras un rechazo")
	assert.Empty(t, s.movements, "el movimiento rechazado no debe quedar en el ledger")
}

func TestRegisterMovement_SubtractExacto_DejaCero(t *testing.T) {
	uc, s := newLedger(t, 10)

	_, err := uc.RegisterMovement(context.Background(), testUserID, dto.RegisterMovementRequest{
		ProductID: 1, Type: entity.MovementTypeSubtract, Quantity: 10, Reason: "cierre",
	})
	require.NoError(t, err, "bajar el stock exactamente a cero es válido")
	assert.Equal(t, 0, s.products[1].Stock)
}

func TestRegisterMovement_ProductoInexistente(t *testing.T) {
	uc, _ := newLedger(t, 10)

	_, err := uc.RegisterMovement(context.Background(), testUserID, dto.RegisterMovementRequest{
		ProductID: 99, Type: entity.MovementTypeAdd, Quantity: 1, Reason: "x",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterMovement_EntradaInvalida(t *testing.T) {
	uc, _ := newLedger(t, 10)
	ctx := context.Background()

	cases := []dto.RegisterMovementRequest{
		{ProductID: 1, Type: "transfer", Quantity: 1, Reason: "x"}, // tipo desconocido
		{ProductID: 1, Type: entity.MovementTypeAdd, Quantity: 0, Reason: "x"},
		{ProductID: 1, Type: entity.MovementTypeAdd, Quantity: -3, Reason: "x"},
		{ProductID: 1, Type: entity.MovementTypeAdd, Quantity: 1, Reason: ""},
	}
	for _, in := range cases {
		_, err := uc.RegisterMovement(ctx, testUserID, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Entradas por ubicación
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateEntry_SumaAlAgregado(t *testing.T) {
	uc, s := newLedger(t, 15)

	out, err := uc.CreateEntry(context.Background(), testUserID, dto.CreateProductStockRequest{
		ProductID: 1, Color: "nogal", Quantity: 3, Workshop: "taller norte",
	})
	require.NoError(t, err)

	assert.Equal(t, 18, s.products[1].Stock)
	assert.Equal(t, "nogal", out.Color)
	assert.Len(t, s.entries, 1)
}

func TestCreateEntry_ProductoInexistente(t *testing.T) {
	uc, s := newLedger(t, 15)

	_, err := uc.CreateEntry(context.Background(), testUserID, dto.CreateProductStockRequest{
		ProductID: 99, Color: "nogal", Quantity: 3, Workshop: "taller norte",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, s.entries)
}

func TestCreateEntry_EntradaInvalida(t *testing.T) {
	uc, _ := newLedger(t, 15)
	ctx := context.Background()

	cases := []dto.CreateProductStockRequest{
		{ProductID: 1, Color: "", Quantity: 3, Workshop: "taller norte"},
		{ProductID: 1, Color: "nogal", Quantity: 0, Workshop: "taller norte"},
		{ProductID: 1, Color: "nogal", Quantity: 3, Workshop: ""},
	}
	for _, in := range cases {
		_, err := uc.CreateEntry(ctx, testUserID, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestUpdateEntry_CambioDeCantidadAplicaDelta(t *testing.T) {
	uc, s := newLedger(t, 15)
	_, err := uc.CreateEntry(context.Background(), testUserID, dto.CreateProductStockRequest{
		ProductID: 1, Color: "nogal", Quantity: 3, Workshop: "taller norte",
	})
	require.NoError(t, err)
	require.Equal(t, 18, s.products[1].Stock)

	// 3 → 1: el agregado baja en 2
	out, err := uc.UpdateEntry(context.Background(), testUserID, 1, dto.UpdateProductStockRequest{
		Quantity: intPtr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Quantity)
	assert.Equal(t, 16, s.products[1].Stock)
}

func TestUpdateEntry_SoloColor_NoTocaElAgregado(t *testing.T) {
	uc, s := newLedger(t, 15)
	_, err := uc.CreateEntry(context.Background(), testUserID, dto.CreateProductStockRequest{
		ProductID: 1, Color: "nogal", Quantity: 3, Workshop: "taller norte",
	})
	require.NoError(t, err)

	out, err := uc.UpdateEntry(context.Background(), testUserID, 1, dto.UpdateProductStockRequest{
		Color: strPtr("cedro"),
	})
	require.NoError(t, err)
	assert.Equal(t, "cedro", out.Color)
	assert.Equal(t, 18, s.products[1].Stock, "cambiar solo el color no debe mover el agregado")
}

func TestUpdateEntry_ProductIDInmutable(t *testing.T) {
	uc, _ := newLedger(t, 15)
	_, err := uc.CreateEntry(context.Background(), testUserID, dto.CreateProductStockRequest{
		ProductID: 1, Color: "nogal", Quantity: 3, Workshop: "taller norte",
	})
	require.NoError(t, err)

	_, err = uc.UpdateEntry(context.Background(), testUserID, 1, dto.UpdateProductStockRequest{
		ProductID: int64Ptr(2),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"cambiar el producto dueño de una entrada debe rechazarse")
}

func TestUpdateEntry_DeltaInsuficiente_NoEscribeNada(t *testing.T) {
	// Entrada 5 con agregado 2 (drift simulado): bajar la entrada a 1 pide
	// delta -4 y el candidato quedaría en -2.
	s := newFakeStore()
	s.products[1] = &entity.Product{ID: 1, Name: "Mesa", Category: "Mesas", Stock: 2}
	s.entries[1] = &entity.ProductStock{ID: 1, ProductID: 1, Color: "roble", Quantity: 5, Workshop: "taller sur"}
	s.nextEntryID = 2
	uc := stock.NewLedgerUseCase(&fakeTxRunner{s}, &fakeProductRepo{s}, &fakeMovementRepo{s}, &fakeEntryRepo{s})

	_, err := uc.UpdateEntry(context.Background(), testUserID, 1, dto.UpdateProductStockRequest{
		Quantity: intPtr(1),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 2, s.products[1].Stock)
	assert.Equal(t, 5, s.entries[1].Quantity, "la entrada no debe cambiar tras un rechazo")
}

func TestUpdateEntry_Inexistente(t *testing.T) {
	uc, _ := newLedger(t, 15)

	_, err := uc.UpdateEntry(context.Background(), testUserID, 42, dto.UpdateProductStockRequest{
		Quantity: intPtr(2),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteEntry_RestaDelAgregado(t *testing.T) {
	uc, s := newLedger(t, 15)
	_, err := uc.CreateEntry(context.Background(), testUserID, dto.CreateProductStockRequest{
		ProductID: 1, Color: "nogal", Quantity: 3, Workshop: "taller norte",
	})
	require.NoError(t, err)
	require.Equal(t, 18, s.products[1].Stock)

	err = uc.DeleteEntry(context.Background(), testUserID, 1)
	require.NoError(t, err)

	assert.Equal(t, 15, s.products[1].Stock)
	assert.Empty(t, s.entries)
}

func TestDeleteEntry_AgregadoCorrupto_NoEscribeNada(t *testing.T) {
	// Agregado menor que la entrada: borrar dejaría el stock en negativo.
	s := newFakeStore()
	s.products[1] = &entity.Product{ID: 1, Name: "Mesa", Category: "Mesas", Stock: 2}
	s.entries[1] = &entity.ProductStock{ID: 1, ProductID: 1, Color: "roble", Quantity: 5, Workshop: "taller sur"}
	s.nextEntryID = 2
	uc := stock.NewLedgerUseCase(&fakeTxRunner{s}, &fakeProductRepo{s}, &fakeMovementRepo{s}, &fakeEntryRepo{s})

	err := uc.DeleteEntry(context.Background(), testUserID, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Len(t, s.entries, 1, "la entrada debe seguir existiendo tras el rechazo")
	assert.Equal(t, 2, s.products[1].Stock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reconcile
// ──────────────────────────────────────────────────────────────────────────────

func TestReconcile_Consistente(t *testing.T) {
	uc, _ := newLedger(t, 0)
	ctx := context.Background()

	_, err := uc.RegisterMovement(ctx, testUserID, dto.RegisterMovementRequest{
		ProductID: 1, Type: entity.MovementTypeAdd, Quantity: 10, Reason: "producción",
	})
	require.NoError(t, err)
	_, err = uc.CreateEntry(ctx, testUserID, dto.CreateProductStockRequest{
		ProductID: 1, Color: "nogal", Quantity: 3, Workshop: "taller norte",
	})
	require.NoError(t, err)

	out, err := uc.Reconcile(ctx, 1)
	require.NoError(t, err)
	assert.True(t, out.Consistent)
	assert.Equal(t, 13, out.Stock)
	assert.Equal(t, 13, out.ExpectedStock)
	assert.Zero(t, out.Drift)
}

func TestReconcile_DetectaDrift(t *testing.T) {
	uc, s := newLedger(t, 0)
	ctx := context.Background()

	_, err := uc.RegisterMovement(ctx, testUserID, dto.RegisterMovementRequest{
		ProductID: 1, Type: entity.MovementTypeAdd, Quantity: 10, Reason: "producción",
	})
	require.NoError(t, err)

	// Corrupción simulada: alguien tocó el agregado por fuera del ledger.
	s.products[1].Stock = 12

	out, err := uc.Reconcile(ctx, 1)
	require.NoError(t, err)
	assert.False(t, out.Consistent)
	assert.Equal(t, 12, out.Stock)
	assert.Equal(t, 10, out.ExpectedStock)
	assert.Equal(t, 2, out.Drift)
}

func TestReconcile_StockInicialNoEsDrift(t *testing.T) {
	// Un producto dado de alta con stock 10 tiene ese stock asentado en el
	// ledger; la auditoría debe cerrarlo consistente sin ningún otro movimiento.
	uc, _ := newLedger(t, 10)

	out, err := uc.Reconcile(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, out.Consistent)
	assert.Equal(t, 10, out.Stock)
	assert.Equal(t, 10, out.ExpectedStock)
	assert.Zero(t, out.Drift)
}

func TestReconcile_ProductoInexistente(t *testing.T) {
	uc, _ := newLedger(t, 0)

	_, err := uc.Reconcile(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario completo: la secuencia de referencia del flujo de taller
// ──────────────────────────────────────────────────────────────────────────────

func TestLedger_EscenarioCompleto(t *testing.T) {
	uc, s := newLedger(t, 10)
	ctx := context.Background()

	// Vender 15 con stock 10: rechazado, nada cambia.
	_, err := uc.RegisterMovement(ctx, testUserID, dto.RegisterMovementRequest{
		ProductID: 1, Type: entity.MovementTypeSubtract, Quantity: 15, Reason: "venta",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	require.Equal(t, 10, s.products[1].Stock)

	// Entra producción: 10 + 5 = 15.
	_, err = uc.RegisterMovement(ctx, testUserID, dto.RegisterMovementRequest{
		ProductID: 1, Type: entity.MovementTypeAdd, Quantity: 5, Reason: "producción",
	})
	require.NoError(t, err)
	require.Equal(t, 15, s.products[1].Stock)

	// Llega una entrada por ubicación de 3: 15 + 3 = 18.
	entry, err := uc.CreateEntry(ctx, testUserID, dto.CreateProductStockRequest{
		ProductID: 1, Color: "nogal", Quantity: 3, Workshop: "taller norte",
	})
	require.NoError(t, err)
	require.Equal(t, 18, s.products[1].Stock)

	// Se elimina la entrada: 18 - 3 = 15.
	require.NoError(t, uc.DeleteEntry(ctx, testUserID, entry.ID))
	require.Equal(t, 15, s.products[1].Stock)

	// El agregado cierra consistente contra ledger + entradas.
	rec, err := uc.Reconcile(ctx, 1)
	require.NoError(t, err)
	assert.True(t, rec.Consistent)
	assert.Equal(t, 15, rec.ExpectedStock)
}
