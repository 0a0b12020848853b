package model

// ProductInfo is the slice of product data a cart line snapshots at the
// moment the product is added. Reservations freeze the same snapshot, so a
// price change or deletion in the catalog never rewrites history.
type ProductInfo struct {
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Type       PetType `json:"type"`
	Breed      string  `json:"breed"`
	PriceCents int64   `json:"price_cents"`
	Price      float64 `json:"price"`
	ImagePath  string  `json:"image_path"`
}

// CartLine is one product code plus a quantity within a cart. Unavailable
// marks a line whose product has since been deleted from the catalog; such
// lines are kept visible so the UI can flag them, but they contribute
// nothing to the totals.
type CartLine struct {
	Product     ProductInfo `json:"product_info"`
	Quantity    int         `json:"quantity"`
	AmountCents int64       `json:"amount_cents"`
	Amount      float64     `json:"amount"`
	Unavailable bool        `json:"unavailable,omitempty"`
}

// Cart is the server-authoritative shopping cart of a single identity.
// Lines keep insertion order. Totals are derived, never stored: see
// Recompute.
type Cart struct {
	Lines         []CartLine `json:"cart_lines"`
	QuantityTotal int        `json:"quantity_total"`
	AmountCents   int64      `json:"amount_cents"`
	AmountTotal   float64    `json:"amount_total"`
}

// NewCart returns an empty cart with a non-nil line slice so that JSON
// encodes [] rather than null.
func NewCart() *Cart {
	return &Cart{Lines: []CartLine{}}
}

// IsEmpty reports whether the cart has no effective lines. Lines flagged
// unavailable do not count: a cart holding only deleted products cannot be
// reserved.
func (c *Cart) IsEmpty() bool {
	for _, l := range c.Lines {
		if !l.Unavailable {
			return false
		}
	}
	return true
}

func (c *Cart) findLine(code string) *CartLine {
	for i := range c.Lines {
		if c.Lines[i].Product.Code == code {
			return &c.Lines[i]
		}
	}
	return nil
}

// Add appends a new line or accumulates the quantity of an existing one.
// Repeated adds of the same code are cumulative, keeping "Add to Cart"
// safe to press twice.
func (c *Cart) Add(info ProductInfo, quantity int) {
	if line := c.findLine(info.Code); line != nil {
		line.Quantity += quantity
		c.Recompute()
		return
	}
	c.Lines = append(c.Lines, CartLine{Product: info, Quantity: quantity})
	c.Recompute()
}

// Update sets the absolute quantity of a line. A quantity of zero or less
// removes the line. Updating a code not present is a no-op.
func (c *Cart) Update(code string, quantity int) {
	if quantity <= 0 {
		c.Remove(code)
		return
	}
	if line := c.findLine(code); line != nil {
		line.Quantity = quantity
		c.Recompute()
	}
}

// Remove deletes the line for the given code. Removing a code not present
// leaves the cart unchanged.
func (c *Cart) Remove(code string) {
	for i := range c.Lines {
		if c.Lines[i].Product.Code == code {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			c.Recompute()
			return
		}
	}
}

// Clear empties the cart. Idempotent.
func (c *Cart) Clear() {
	c.Lines = []CartLine{}
	c.Recompute()
}

// Recompute refreshes per-line amounts and the cart totals from the lines.
// QuantityTotal is the sum of line quantities and AmountCents is the sum of
// quantity times snapshot price, both skipping unavailable lines.
func (c *Cart) Recompute() {
	var qty int
	var cents int64
	for i := range c.Lines {
		l := &c.Lines[i]
		l.AmountCents = int64(l.Quantity) * l.Product.PriceCents
		l.Amount = float64(l.AmountCents) / 100.0
		l.Product.Price = float64(l.Product.PriceCents) / 100.0
		if l.Unavailable {
			continue
		}
		qty += l.Quantity
		cents += l.AmountCents
	}
	c.QuantityTotal = qty
	c.AmountCents = cents
	c.AmountTotal = float64(cents) / 100.0
}
