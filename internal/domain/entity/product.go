package entity

import "github.com/shopspring/decimal"

// Product representa un producto o SKU. El precio se usa para decidir si un
// traslado supera el umbral de valor que exige aprobación humana.
type Product struct {
	SKU                string
	Name               string
	Category           string
	Price              decimal.Decimal
	AgingThresholdDays int
}
