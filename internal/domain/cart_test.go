package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id string, price string) *Product {
	return &Product{
		ID:      id,
		StoreID: "store-1",
		Name:    "Produto " + id,
		Price:   decimal.RequireFromString(price),
		Stock:   10,
		Active:  true,
	}
}

func TestCartMergesIdenticalLines(t *testing.T) {
	cart := &Cart{}
	p := testProduct("p1", "50.00")

	cart.AddItem(p, 1, map[string]string{"size": "M"})
	cart.AddItem(p, 2, map[string]string{"size": "M"})

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestCartDistinguishesOptions(t *testing.T) {
	cart := &Cart{}
	p := testProduct("p1", "50.00")

	cart.AddItem(p, 1, map[string]string{"size": "M"})
	cart.AddItem(p, 1, map[string]string{"size": "G"})
	cart.AddItem(p, 1, nil)

	assert.Len(t, cart.Items, 3)
}

func TestOptionsKeyIsOrderIndependent(t *testing.T) {
	a := OptionsKey(map[string]string{"size": "M", "color": "azul"})
	b := OptionsKey(map[string]string{"color": "azul", "size": "M"})
	assert.Equal(t, a, b)
	assert.Equal(t, "", OptionsKey(nil))
}

func TestUpdateQuantityClampsAtOne(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testProduct("p1", "10.00"), 2, nil)

	ok := cart.UpdateQuantity("p1", "", -5)
	require.True(t, ok)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	ok = cart.UpdateQuantity("missing", "", 1)
	assert.False(t, ok)
}

func TestCartTotalWithFixedCoupon(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testProduct("p1", "100.00"), 2, nil)

	cart.ApplyCoupon("BEMVINDA", decimal.RequireFromString("10"))
	assert.True(t, cart.Total().Equal(decimal.RequireFromString("190.00")), "got %s", cart.Total())

	cart.RemoveCoupon()
	assert.True(t, cart.Total().Equal(decimal.RequireFromString("200.00")), "got %s", cart.Total())
}

func TestCartTotalFlooredAtZero(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testProduct("p1", "5.00"), 1, nil)
	cart.ApplyCoupon("GIGANTE", decimal.RequireFromString("50"))

	assert.True(t, cart.Total().Equal(decimal.Zero))
}

func TestAddItemClampsQuantity(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testProduct("p1", "10.00"), 0, nil)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestAddItemUsesPromoPrice(t *testing.T) {
	promo := decimal.RequireFromString("40.00")
	p := testProduct("p1", "50.00")
	p.PromoPrice = &promo

	cart := &Cart{}
	cart.AddItem(p, 1, nil)
	assert.True(t, cart.Subtotal().Equal(promo))
}

func TestRemoveItem(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testProduct("p1", "10.00"), 1, map[string]string{"size": "M"})
	cart.AddItem(testProduct("p2", "20.00"), 1, nil)

	cart.RemoveItem("p1", OptionsKey(map[string]string{"size": "M"}))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)
}
