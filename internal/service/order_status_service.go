package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/emmawebdev2005/ShopGenius/internal/events"
	"github.com/emmawebdev2005/ShopGenius/internal/repository"
	"go.uber.org/zap"
)

// OrderStatusService applies fulfilment updates coming off the status topic.
type OrderStatusService struct {
	orders OrderGateway
	logger *zap.Logger
}

func NewOrderStatusService(orders OrderGateway, logger *zap.Logger) *OrderStatusService {
	return &OrderStatusService{
		orders: orders,
		logger: logger,
	}
}

func (s *OrderStatusService) Apply(ctx context.Context, event events.OrderStatusChangedEvent) error {
	order, changed, err := s.orders.UpdateOrderStatus(ctx, event.OrderID, event.Status)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return fmt.Errorf("%w: %w", events.ErrUnprocessable, ErrOrderNotFound)
		}
		return err
	}

	if !changed {
		s.logger.Debug("Order status unchanged",
			zap.String("order_id", order.ID),
			zap.String("status", order.Status.String()))
		return nil
	}
	s.logger.Info("Order status updated",
		zap.String("order_id", order.ID),
		zap.String("status", order.Status.String()))
	return nil
}
