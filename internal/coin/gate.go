package coin

// Requirement is the result of checking a user's coin balance
// against the cost of a booking before it is created.
type Requirement struct {
	BaseFee       int64 `json:"base_fee"`
	DiscountCost  int64 `json:"discount_cost"`
	RequiredCoins int64 `json:"required_coins"`
	Balance       int64 `json:"balance"`
	Allowed       bool  `json:"allowed"`
	Shortfall     int64 `json:"shortfall"`
}

// CheckRequirement computes whether a balance covers a booking's coin
// cost. A booking with zero total cost is always allowed, so hotels
// without a base fee stay bookable for brand-new accounts.
func CheckRequirement(baseFee, discountCost, balance int64) Requirement {
	req := Requirement{
		BaseFee:       baseFee,
		DiscountCost:  discountCost,
		RequiredCoins: baseFee + discountCost,
		Balance:       balance,
	}

	req.Allowed = req.RequiredCoins == 0 || balance >= req.RequiredCoins
	if !req.Allowed {
		req.Shortfall = req.RequiredCoins - balance
	}

	return req
}
