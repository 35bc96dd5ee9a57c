package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/yishaq/backend/internal/domain/order"
	"github.com/yishaq/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Service places storefront orders. It is the single price authority:
// client-submitted amounts are never trusted, every line is re-priced
// from the catalog inside the checkout transaction.
type Service struct {
	scope        TransactionScope
	shippingRule order.ShippingRule
	generate     order.NumberGenerator
	logger       *zap.Logger
}

// NewService creates a new checkout Service
func NewService(scope TransactionScope, shippingRule order.ShippingRule, logger *zap.Logger) *Service {
	return &Service{
		scope:        scope,
		shippingRule: shippingRule,
		generate:     order.GenerateNumber,
		logger:       logger,
	}
}

// SetNumberGenerator overrides the order number generator
func (s *Service) SetNumberGenerator(generate order.NumberGenerator) {
	s.generate = generate
}

// PlaceOrder validates the cart, decrements stock and creates the order
// atomically. On an order number collision the whole transaction is
// retried once with a fresh number.
func (s *Service) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*PlaceOrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, shared.NewDomainError("EMPTY_CART", "Cart is empty")
	}
	method, err := order.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	placed, err := s.placeOnce(ctx, req, method)
	if errors.Is(err, shared.ErrAlreadyExists) {
		s.logger.Warn("order number collision, retrying with a fresh number")
		placed, err = s.placeOnce(ctx, req, method)
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("ORDER_NUMBER_CONFLICT", "Could not allocate a unique order number")
		}
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("order placed",
		zap.String("order_number", placed.OrderNumber),
		zap.String("total", placed.Total.Amount().StringFixed(2)),
		zap.Int("items", len(placed.Items)),
	)

	resp := ToPlaceOrderResponse(placed, s.paymentInstructions(placed))
	return &resp, nil
}

func (s *Service) placeOnce(ctx context.Context, req PlaceOrderRequest, method order.PaymentMethod) (*order.Order, error) {
	country := req.Shipping.Country
	if country == "" {
		country = "México"
	}
	o, err := order.NewOrder(s.generate(), req.UserID, method, order.ShippingAddress{
		FirstName:  req.Shipping.FirstName,
		LastName:   req.Shipping.LastName,
		Email:      req.Shipping.Email,
		Phone:      req.Shipping.Phone,
		Address:    req.Shipping.Address,
		City:       req.Shipping.City,
		State:      req.Shipping.State,
		PostalCode: req.Shipping.PostalCode,
		Country:    country,
	}, req.CustomerNotes)
	if err != nil {
		return nil, err
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		for _, item := range req.Items {
			if item.Quantity <= 0 {
				return shared.NewDomainError("INVALID_INPUT", "Quantity must be positive")
			}

			product, err := repos.ProductRepo().FindByID(ctx, item.ProductID)
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					return shared.NewDomainError("PRODUCT_NOT_FOUND",
						fmt.Sprintf("Product %s does not exist", item.ProductID))
				}
				return err
			}
			if !product.IsPurchasable() {
				return shared.NewDomainError("PRODUCT_UNAVAILABLE",
					fmt.Sprintf("%s is no longer available", product.Name))
			}
			if !product.HasSize(item.Size) {
				return shared.NewDomainError("INVALID_INPUT",
					fmt.Sprintf("%s is not offered in size %s", product.Name, item.Size))
			}

			// Conditional decrement: fails atomically when stock is short
			if err := repos.ProductRepo().DecrementStock(ctx, product.ID, item.Quantity); err != nil {
				if errors.Is(err, shared.ErrInsufficientStock) {
					return shared.NewDomainError("INSUFFICIENT_STOCK",
						fmt.Sprintf("Only %d units of %s available", product.Stock, product.Name))
				}
				return err
			}

			if err := o.AddLine(product.ID, product.Name, product.MainImage(), product.SKU,
				item.Size, item.Quantity, product.Price); err != nil {
				return err
			}
		}

		if err := o.Price(s.shippingRule); err != nil {
			return err
		}

		return repos.OrderRepo().Save(ctx, o)
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}

// paymentInstructions builds the post-checkout message for the chosen
// payment method.
func (s *Service) paymentInstructions(o *order.Order) string {
	total := o.Total.Amount().StringFixed(2)
	switch o.PaymentMethod {
	case order.PaymentMethodCard:
		return "Serás redirigido a la pasarela de pago segura."
	case order.PaymentMethodOxxo:
		return fmt.Sprintf("Presenta este número de orden (%s) en cualquier OXXO y paga $%s MXN. Tu pedido será procesado una vez confirmado el pago.", o.OrderNumber, total)
	case order.PaymentMethodTransfer:
		return fmt.Sprintf("Realiza una transferencia de $%s MXN con el concepto: %s. Recibirás los datos bancarios por email.", total, o.OrderNumber)
	default:
		return "Gracias por tu compra."
	}
}
