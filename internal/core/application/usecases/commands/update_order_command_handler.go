package commands

import (
	"context"
	"log/slog"

	"commerce/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler applies a combined status/items update to an
// order in a single transaction. Ordering within the operation is fixed:
// status check first, then item replacement, then total recalculation, then
// persistence; any failure aborts the whole operation with no partial writes.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewUpdateOrderCommandHandler creates a handler for combined order updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "update_order_handler"),
	}
}

// Handle processes the combined update and returns the refreshed order with
// its items loaded.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	changed := false

	if cmd.Status() != nil {
		oldStatus := aggregate.Status()
		if err = aggregate.ChangeStatus(*cmd.Status()); err != nil {
			return nil, err
		}
		changed = changed || aggregate.Status() != oldStatus
	}

	if cmd.Items() != nil {
		if err = aggregate.ReplaceItems(cmd.Items()); err != nil {
			return nil, err
		}
		changed = true
	}

	if changed {
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return nil, err
		}

		if aggregate, err = orderRepo.Get(ctx, cmd.OrderID()); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if changed {
		h.logger.InfoContext(ctx, "order updated",
			"order_id", aggregate.ID().String(),
			"status", aggregate.Status().String(),
			"total_amount", aggregate.TotalAmount().String(),
		)
	}

	return aggregate, nil
}
