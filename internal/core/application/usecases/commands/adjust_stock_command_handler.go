package commands

import (
	"context"
	"time"

	"livraison/internal/core/domain/services"
)

// AdjustStockCommandHandler handles administrative stock corrections.
type AdjustStockCommandHandler struct {
	uowFactory  StockUoWFactory
	accessGuard services.AccessGuard
}

// NewAdjustStockCommandHandler creates a handler for stock corrections.
func NewAdjustStockCommandHandler(
	uowFactory StockUoWFactory,
	accessGuard services.AccessGuard,
) AdjustStockCommandHandler {
	return AdjustStockCommandHandler{
		uowFactory:  uowFactory,
		accessGuard: accessGuard,
	}
}

// Handle processes the stock correction command. The read and write share
// one transaction, so a concurrent delivery confirmation either sees the
// corrected quantity or finishes before the correction lands, never a mix.
func (h *AdjustStockCommandHandler) Handle(ctx context.Context, cmd AdjustStockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.accessGuard.CanManageStock(cmd.RequestedBy()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.StockRepository()
	aggregate, err := repo.Get(ctx, cmd.StockID())
	if err != nil {
		return err
	}

	if err = aggregate.SetQuantity(cmd.Quantity(), time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
