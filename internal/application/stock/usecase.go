// Package stock implementa el ledger de stock: el único punto del sistema
// autorizado a mutar Product.Stock.
//
// Invariante central: el stock agregado de un producto nunca es negativo y
// refleja en todo momento el efecto neto de los movimientos aplicados más las
// entradas por ubicación vigentes. Cada operación ejecuta la secuencia
// leer-verificar-escribir dentro de UNA transacción, con bloqueo de fila
// sobre products (SELECT FOR UPDATE): o se escriben la fila de detalle y el
// agregado juntos, o no se escribe nada.
package stock

import (
	"context"
	"time"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

// LedgerUseCase casos de uso del ledger: movimientos y entradas por ubicación.
type LedgerUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	movRepo     repository.StockMovementRepository
	entryRepo   repository.ProductStockRepository
}

// NewLedgerUseCase construye el caso de uso. Los repos sueltos se usan para
// lecturas fuera de transacción (listados y auditoría); toda mutación pasa
// por txRunner.
func NewLedgerUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	entryRepo repository.ProductStockRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		movRepo:     movRepo,
		entryRepo:   entryRepo,
	}
}

// RegisterMovement aplica un movimiento add/subtract sobre el producto.
// Rechaza con ErrInsufficientStock si el total resultante sería negativo;
// en ese caso no se escribe nada.
func (uc *LedgerUseCase) RegisterMovement(ctx context.Context, userID int64, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if in.Type != entity.MovementTypeAdd && in.Type != entity.MovementTypeSubtract {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 1 || in.Reason == "" {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.MovementResponse
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		_ repository.ProductStockRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		delta := in.Quantity
		if in.Type == entity.MovementTypeSubtract {
			delta = -delta
		}
		candidate := product.Stock + delta
		if candidate < 0 {
			return domain.ErrInsufficientStock
		}

		mov := &entity.StockMovement{
			ProductID: in.ProductID,
			Type:      in.Type,
			Quantity:  in.Quantity,
			Reason:    in.Reason,
			Note:      in.Note,
			Date:      time.Now(),
			CreatedBy: &userID,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if err := productRepo.UpdateStock(product.ID, candidate, userID); err != nil {
			return err
		}
		out = toMovementResponse(mov)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateEntry crea una entrada de stock por ubicación y suma su cantidad al
// agregado del producto.
func (uc *LedgerUseCase) CreateEntry(ctx context.Context, userID int64, in dto.CreateProductStockRequest) (*dto.ProductStockResponse, error) {
	if in.Quantity < 1 || in.Color == "" || in.Workshop == "" {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.ProductStockResponse
	err := uc.txRunner.Run(ctx, func(
		_ repository.StockMovementRepository,
		entryRepo repository.ProductStockRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		entry := &entity.ProductStock{
			ProductID: in.ProductID,
			Color:     in.Color,
			Quantity:  in.Quantity,
			Workshop:  in.Workshop,
			CreatedBy: &userID,
		}
		if err := entryRepo.Create(entry); err != nil {
			return err
		}
		// Quantity >= 1, el candidato nunca baja de cero aquí
		if err := productRepo.UpdateStock(product.ID, product.Stock+in.Quantity, userID); err != nil {
			return err
		}
		out = toEntryResponse(entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateEntry actualiza una entrada existente. El producto dueño es inmutable
// (ErrInvalidInput si el request lo trae). Un cambio de cantidad aplica el
// delta al agregado del producto con verificación de no-negatividad; los
// demás campos no tocan el agregado.
func (uc *LedgerUseCase) UpdateEntry(ctx context.Context, userID, id int64, in dto.UpdateProductStockRequest) (*dto.ProductStockResponse, error) {
	if in.ProductID != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity != nil && *in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.ProductStockResponse
	err := uc.txRunner.Run(ctx, func(
		_ repository.StockMovementRepository,
		entryRepo repository.ProductStockRepository,
		productRepo repository.ProductRepository,
	) error {
		entry, err := entryRepo.GetByID(id)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ErrNotFound
		}
		product, err := productRepo.GetForUpdate(entry.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		if in.Color != nil {
			entry.Color = *in.Color
		}
		if in.Workshop != nil {
			entry.Workshop = *in.Workshop
		}

		if in.Quantity != nil && *in.Quantity != entry.Quantity {
			delta := *in.Quantity - entry.Quantity
			candidate := product.Stock + delta
			if candidate < 0 {
				return domain.ErrInsufficientStock
			}
			entry.Quantity = *in.Quantity
			if err := entryRepo.Update(entry); err != nil {
				return err
			}
			if err := productRepo.UpdateStock(product.ID, candidate, userID); err != nil {
				return err
			}
		} else {
			if err := entryRepo.Update(entry); err != nil {
				return err
			}
		}
		out = toEntryResponse(entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteEntry elimina una entrada y resta su cantidad del agregado.
// El chequeo de no-negatividad solo dispara si el agregado ya estaba
// corrupto; aun así se rechaza sin escribir nada.
func (uc *LedgerUseCase) DeleteEntry(ctx context.Context, userID, id int64) error {
	return uc.txRunner.Run(ctx, func(
		_ repository.StockMovementRepository,
		entryRepo repository.ProductStockRepository,
		productRepo repository.ProductRepository,
	) error {
		entry, err := entryRepo.GetByID(id)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ErrNotFound
		}
		product, err := productRepo.GetForUpdate(entry.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		candidate := product.Stock - entry.Quantity
		if candidate < 0 {
			return domain.ErrInsufficientStock
		}
		if err := entryRepo.Delete(entry.ID); err != nil {
			return err
		}
		return productRepo.UpdateStock(product.ID, candidate, userID)
	})
}

// Reconcile audita la consistencia del agregado de un producto: lo compara
// contra la suma neta del ledger más las entradas vigentes. Solo lectura;
// no repara el drift.
func (uc *LedgerUseCase) Reconcile(_ context.Context, productID int64) (*dto.ReconcileResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	movSum, err := uc.movRepo.SumDeltaByProduct(productID)
	if err != nil {
		return nil, err
	}
	entrySum, err := uc.entryRepo.SumQuantityByProduct(productID)
	if err != nil {
		return nil, err
	}
	expected := movSum + entrySum
	return &dto.ReconcileResponse{
		ProductID:     productID,
		Stock:         product.Stock,
		ExpectedStock: expected,
		Drift:         product.Stock - expected,
		Consistent:    product.Stock == expected,
	}, nil
}

// ListMovements lista el ledger completo o filtrado por producto.
func (uc *LedgerUseCase) ListMovements(productID *int64) ([]dto.MovementResponse, error) {
	var (
		movs []*entity.StockMovement
		err  error
	)
	if productID != nil {
		movs, err = uc.movRepo.ListByProduct(*productID)
	} else {
		movs, err = uc.movRepo.List()
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, *toMovementResponse(m))
	}
	return out, nil
}

// ListEntries lista las entradas por ubicación, opcionalmente por producto.
func (uc *LedgerUseCase) ListEntries(productID *int64) ([]dto.ProductStockResponse, error) {
	var (
		entries []*entity.ProductStock
		err     error
	)
	if productID != nil {
		entries, err = uc.entryRepo.ListByProduct(*productID)
	} else {
		entries, err = uc.entryRepo.List()
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductStockResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, *toEntryResponse(e))
	}
	return out, nil
}

// GetEntry obtiene una entrada por ID. Devuelve (nil, nil) si no existe.
func (uc *LedgerUseCase) GetEntry(id int64) (*dto.ProductStockResponse, error) {
	entry, err := uc.entryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}
	return toEntryResponse(entry), nil
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		Reason:    m.Reason,
		Note:      m.Note,
		Date:      m.Date,
		CreatedBy: m.CreatedBy,
	}
}

func toEntryResponse(e *entity.ProductStock) *dto.ProductStockResponse {
	return &dto.ProductStockResponse{
		ID:        e.ID,
		ProductID: e.ProductID,
		Color:     e.Color,
		Quantity:  e.Quantity,
		Workshop:  e.Workshop,
		CreatedBy: e.CreatedBy,
	}
}
