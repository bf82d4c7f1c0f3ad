package entity

// Demand is one normalized buy listing. BuyLimit is the remaining
// purchasable quantity; stock reconciliation only ever lowers it, floored
// at zero, and only for player shops.
type Demand struct {
	Item         string  `json:"item"`
	OwnName      any     `json:"own_name"`
	Amount       int     `json:"amount"`
	ExchangeItem string  `json:"exchange_item"`
	Price        float64 `json:"price"`
	UnitPrice    float64 `json:"unit_price"`
	BuyLimit     int     `json:"buy_limit"`
	IsBestPrice  *bool   `json:"is_best_price"`
}
