package order

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yishaq/backend/internal/domain/shared"
	"github.com/yishaq/backend/internal/domain/shared/valueobject"
)

func testShippingRule() ShippingRule {
	return ShippingRule{
		FreeThreshold: valueobject.NewMoneyMXN(decimal.NewFromInt(1000)),
		FlatFee:       valueobject.NewMoneyMXN(decimal.NewFromInt(99)),
	}
}

func testAddress() ShippingAddress {
	return ShippingAddress{
		FirstName:  "Ana",
		LastName:   "García",
		Email:      "ana@example.com",
		Phone:      "5512345678",
		Address:    "Av. Insurgentes Sur 1234",
		City:       "Ciudad de México",
		State:      "CDMX",
		PostalCode: "03100",
		Country:    "México",
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("creates pending order", func(t *testing.T) {
		o, err := NewOrder("YSQ-2026-TEST0001", nil, PaymentMethodCard, testAddress(), "")
		require.NoError(t, err)
		assert.Equal(t, OrderStatusPending, o.Status)
		assert.Equal(t, PaymentStatusPending, o.PaymentStatus)
		assert.Nil(t, o.UserID)
		assert.Empty(t, o.Items)
	})

	t.Run("rejects empty order number", func(t *testing.T) {
		_, err := NewOrder("", nil, PaymentMethodCard, testAddress(), "")
		assert.Error(t, err)
	})

	t.Run("rejects unknown payment method", func(t *testing.T) {
		_, err := NewOrder("YSQ-2026-TEST0001", nil, PaymentMethod("paypal"), testAddress(), "")
		require.Error(t, err)
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "INVALID_PAYMENT_METHOD", derr.Code)
	})

	t.Run("rejects incomplete shipping address", func(t *testing.T) {
		addr := testAddress()
		addr.PostalCode = ""
		_, err := NewOrder("YSQ-2026-TEST0001", nil, PaymentMethodOxxo, addr, "")
		assert.Error(t, err)
	})
}

func TestOrder_AddLine(t *testing.T) {
	o, err := NewOrder("YSQ-2026-TEST0001", nil, PaymentMethodCard, testAddress(), "")
	require.NoError(t, err)

	t.Run("snapshots product data", func(t *testing.T) {
		pid := uuid.New()
		err := o.AddLine(pid, "Playera Oversize Negra", "/img/playera.jpg", "YSQ-PL-001", "M", 2,
			valueobject.NewMoneyMXN(decimal.NewFromInt(280)))
		require.NoError(t, err)
		require.Len(t, o.Items, 1)
		item := o.Items[0]
		assert.Equal(t, pid, item.ProductID)
		assert.Equal(t, "Playera Oversize Negra", item.ProductName)
		assert.True(t, item.TotalPrice.Amount().Equal(decimal.NewFromInt(560)))
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		err := o.AddLine(uuid.New(), "Gorra", "", "", "", 0, valueobject.NewMoneyMXN(decimal.NewFromInt(150)))
		assert.Error(t, err)
	})
}

func TestOrder_Price(t *testing.T) {
	t.Run("charges flat shipping below threshold", func(t *testing.T) {
		o, err := NewOrder("YSQ-2026-TEST0001", nil, PaymentMethodCard, testAddress(), "")
		require.NoError(t, err)
		require.NoError(t, o.AddLine(uuid.New(), "Playera Oversize Negra", "", "", "M", 2,
			valueobject.NewMoneyMXN(decimal.NewFromInt(280))))
		require.NoError(t, o.Price(testShippingRule()))

		assert.True(t, o.Subtotal.Amount().Equal(decimal.NewFromInt(560)))
		assert.True(t, o.ShippingCost.Amount().Equal(decimal.NewFromInt(99)))
		assert.True(t, o.Tax.IsZero())
		assert.True(t, o.Discount.IsZero())
		assert.True(t, o.Total.Amount().Equal(decimal.NewFromInt(659)))
	})

	t.Run("free shipping at threshold", func(t *testing.T) {
		o, err := NewOrder("YSQ-2026-TEST0002", nil, PaymentMethodTransfer, testAddress(), "")
		require.NoError(t, err)
		require.NoError(t, o.AddLine(uuid.New(), "Sudadera", "", "", "L", 2,
			valueobject.NewMoneyMXN(decimal.NewFromInt(500))))
		require.NoError(t, o.Price(testShippingRule()))

		assert.True(t, o.ShippingCost.IsZero())
		assert.True(t, o.Total.Amount().Equal(decimal.NewFromInt(1000)))
	})

	t.Run("rejects empty order", func(t *testing.T) {
		o, err := NewOrder("YSQ-2026-TEST0003", nil, PaymentMethodCard, testAddress(), "")
		require.NoError(t, err)
		err = o.Price(testShippingRule())
		require.Error(t, err)
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "EMPTY_CART", derr.Code)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	newOrder := func(t *testing.T) *Order {
		o, err := NewOrder("YSQ-2026-TEST0001", nil, PaymentMethodCard, testAddress(), "")
		require.NoError(t, err)
		return o
	}

	t.Run("stamps shippedAt once", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.ChangeStatus(OrderStatusShipped))
		require.NotNil(t, o.ShippedAt)
		first := *o.ShippedAt

		time.Sleep(5 * time.Millisecond)
		require.NoError(t, o.ChangeStatus(OrderStatusShipped))
		assert.Equal(t, first, *o.ShippedAt)
	})

	t.Run("stamps deliveredAt once", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.ChangeStatus(OrderStatusDelivered))
		require.NotNil(t, o.DeliveredAt)
		first := *o.DeliveredAt

		time.Sleep(5 * time.Millisecond)
		require.NoError(t, o.ChangeStatus(OrderStatusDelivered))
		assert.Equal(t, first, *o.DeliveredAt)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		o := newOrder(t)
		err := o.ChangeStatus(OrderStatus("archived"))
		require.Error(t, err)
	})
}

func TestOrder_ChangePaymentStatus(t *testing.T) {
	o, err := NewOrder("YSQ-2026-TEST0001", nil, PaymentMethodOxxo, testAddress(), "")
	require.NoError(t, err)

	require.NoError(t, o.ChangePaymentStatus(PaymentStatusPaid))
	require.NotNil(t, o.PaidAt)
	first := *o.PaidAt

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, o.ChangePaymentStatus(PaymentStatusPaid))
	assert.Equal(t, first, *o.PaidAt)

	require.NoError(t, o.ChangePaymentStatus(PaymentStatusRefunded))
	assert.Equal(t, PaymentStatusRefunded, o.PaymentStatus)
	assert.Equal(t, first, *o.PaidAt)
}

func TestGenerateNumber(t *testing.T) {
	t.Run("matches expected shape", func(t *testing.T) {
		n := GenerateNumber()
		parts := strings.Split(n, "-")
		require.Len(t, parts, 3)
		assert.Equal(t, "YSQ", parts[0])
		assert.Equal(t, strconv.Itoa(time.Now().Year()), parts[1])
		assert.GreaterOrEqual(t, len(parts[2]), suffixLength+1)
		assert.Equal(t, n, strings.ToUpper(n))
	})

	t.Run("distinct across calls", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			n := GenerateNumber()
			assert.False(t, seen[n], "duplicate order number %s", n)
			seen[n] = true
		}
	})
}

func TestParseOrderStatus(t *testing.T) {
	for _, valid := range []string{"pending", "confirmed", "processing", "shipped", "delivered", "cancelled", "refunded"} {
		s, err := ParseOrderStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, s.String())
	}

	_, err := ParseOrderStatus("unknown")
	var derr *shared.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "INVALID_STATUS", derr.Code)
}

func TestParsePaymentMethod(t *testing.T) {
	for _, valid := range []string{"card", "oxxo", "transfer"} {
		m, err := ParsePaymentMethod(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, m.String())
	}

	_, err := ParsePaymentMethod("cash")
	assert.Error(t, err)
}
