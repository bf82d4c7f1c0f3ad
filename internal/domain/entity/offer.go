package entity

// Offer is one normalized sell listing.
//
// UnitPrice is Price/Amount as computed at build time and is never
// recomputed; the discount only enters through ComparisonPrice.
type Offer struct {
	OwnName      any            `json:"own_name"`
	Item         string         `json:"item"`
	Amount       int            `json:"amount"`
	ExchangeItem string         `json:"exchange_item"`
	Price        float64        `json:"price"`
	Discount     float64        `json:"price_discount"`
	UnitPrice    float64        `json:"unit_price"`
	Stock        int            `json:"stock"`
	IsBestPrice  *bool          `json:"is_best_price"`
	Enchantments []Enchantment  `json:"enchants,omitempty"`
	Drawer       map[string]any `json:"simpledrawer,omitempty"`
}

type Enchantment struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// ComparisonPrice is the discounted unit price used for best-price
// comparisons only.
func (o *Offer) ComparisonPrice() float64 {
	return o.UnitPrice * (1 - o.Discount/100)
}
