package commands

import (
	"context"
	"log/slog"

	"commerce/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler applies a status transition to an order.
// An illegal transition surfaces as an InvalidStatusTransitionError and
// leaves the order untouched; a self-transition succeeds without writing.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "update_order_status_handler"),
	}
}

// Handle processes the status change and returns the refreshed order.
// The status change never touches the order's items or total.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
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

	oldStatus := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	changed := aggregate.Status() != oldStatus
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
		h.logger.InfoContext(ctx, "order status updated",
			"order_id", aggregate.ID().String(),
			"old_status", oldStatus.String(),
			"new_status", aggregate.Status().String(),
		)
	}

	return aggregate, nil
}
