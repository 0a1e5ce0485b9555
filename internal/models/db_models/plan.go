package db_models

import (
	"gorm.io/datatypes"
)

type BillingPeriod string

const (
	PeriodMonth BillingPeriod = "month"
	PeriodYear  BillingPeriod = "year"
)

type Plan struct {
	BaseModel
	Code        string `gorm:"uniqueIndex"` // e.g. "premium_monthly", "premium_yearly"
	Name        string
	Description *string
	Period      BillingPeriod `gorm:"size:8"`
	PriceMinor  int64         // 999 = EUR 9.99
	Currency    string        `gorm:"size:3"`
	IsActive    bool          `gorm:"default:true"`

	Features datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}

// PremiumDuration is the premium-window time a paid plan funds.
func (p *Plan) PremiumDuration() (days int) {
	if p.Period == PeriodYear {
		return 365
	}
	return 30
}
