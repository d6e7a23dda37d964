package model

import "github.com/shopspring/decimal"

type Balance struct {
	TotalRevenue int64           `json:"totalRevenue"`
	SharePercent decimal.Decimal `json:"sharePercent"`
	GrossShare   int64           `json:"grossShare"`
	Withdrawn    int64           `json:"withdrawn"`
	Net          int64           `json:"net"`
}

// Available is the amount that may still be withdrawn. A negative net
// balance only happens with inconsistent data and allows nothing.
func (b Balance) Available() int64 {
	if b.Net < 0 {
		return 0
	}
	return b.Net
}
