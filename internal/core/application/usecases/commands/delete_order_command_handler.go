package commands

import (
	"context"
	"log/slog"
)

// DeleteOrderCommandHandler removes an order together with its items in a
// single transaction. The handler reports whether a row was actually removed
// so callers can distinguish a deletion from an idempotent no-op.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "delete_order_handler"),
	}
}

// Handle processes the deletion and returns true when an order was removed,
// false when no order with the given identifier existed.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.OrderRepository().Delete(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	if removed {
		h.logger.InfoContext(ctx, "order deleted",
			"order_id", cmd.OrderID().String(),
		)
	}

	return removed, nil
}
