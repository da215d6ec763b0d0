package commands

import (
	"context"
	"time"

	"livraison/internal/core/domain/model/stock"
	"livraison/internal/core/domain/services"
)

// CreateStockItemCommandHandler handles catalog registration. Admin only.
type CreateStockItemCommandHandler struct {
	uowFactory  StockUoWFactory
	accessGuard services.AccessGuard
}

// NewCreateStockItemCommandHandler creates a handler for stock registration.
func NewCreateStockItemCommandHandler(
	uowFactory StockUoWFactory,
	accessGuard services.AccessGuard,
) CreateStockItemCommandHandler {
	return CreateStockItemCommandHandler{
		uowFactory:  uowFactory,
		accessGuard: accessGuard,
	}
}

// Handle processes the stock registration command.
func (h *CreateStockItemCommandHandler) Handle(ctx context.Context, cmd CreateStockItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.accessGuard.CanManageStock(cmd.RequestedBy()); err != nil {
		return err
	}

	aggregate, err := stock.NewStockItem(
		cmd.StockID(),
		cmd.Name(),
		cmd.Reference(),
		cmd.Unit(),
		cmd.Quantity(),
		cmd.MinQuantity(),
		cmd.UnitPrice(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.StockRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
