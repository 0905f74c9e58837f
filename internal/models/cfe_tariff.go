package models

// CfeTariff is a row of the CFE tariff catalog.
type CfeTariff struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	TariffCode string `gorm:"size:20;not null" json:"tariff_code"`
}

// TableName specifies the table name for CfeTariff
func (CfeTariff) TableName() string {
	return "cfe_tariffs"
}
