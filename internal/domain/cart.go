package domain

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

type CartItem struct {
	ProductID   string
	ProductName string
	Options     map[string]string
	UnitPrice   decimal.Decimal
	Quantity    int
}

// OptionsKey canonicalizes an options map so that two carts built from the
// same selections always produce the same line identity.
func OptionsKey(options map[string]string) string {
	if len(options) == 0 {
		return ""
	}
	keys := make([]string, 0, len(options))
	for k := range options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+options[k])
	}
	return strings.Join(parts, ";")
}

// Cart merges lines by (product id, options) identity. Item order is
// insertion order and only matters for display.
type Cart struct {
	Items      []CartItem
	CouponCode string
	Discount   decimal.Decimal
}

func (c *Cart) AddItem(product *Product, quantity int, options map[string]string) {
	if quantity < 1 {
		quantity = 1
	}
	key := OptionsKey(options)
	for i := range c.Items {
		if c.Items[i].ProductID == product.ID && OptionsKey(c.Items[i].Options) == key {
			c.Items[i].Quantity += quantity
			return
		}
	}
	c.Items = append(c.Items, CartItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		Options:     options,
		UnitPrice:   product.EffectivePrice(),
		Quantity:    quantity,
	})
}

// UpdateQuantity applies delta to the matching line, clamping at 1.
// Removing a line is RemoveItem, never a decrement.
func (c *Cart) UpdateQuantity(productID, optionsKey string, delta int) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID && OptionsKey(c.Items[i].Options) == optionsKey {
			next := c.Items[i].Quantity + delta
			if next < 1 {
				next = 1
			}
			c.Items[i].Quantity = next
			return true
		}
	}
	return false
}

func (c *Cart) RemoveItem(productID, optionsKey string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID && OptionsKey(c.Items[i].Options) == optionsKey {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

func (c *Cart) ApplyCoupon(code string, discount decimal.Decimal) {
	c.CouponCode = code
	c.Discount = discount
}

func (c *Cart) RemoveCoupon() {
	c.CouponCode = ""
	c.Discount = decimal.Zero
}

func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range c.Items {
		sum = sum.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return sum
}

// Total is floored at zero: a discount can never drive the cart negative.
func (c *Cart) Total() decimal.Decimal {
	total := c.Subtotal().Sub(c.Discount)
	if total.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return total
}
