package models

import "encoding/json"

// NoProspectID marks a quote whose prospect has no CRM record yet.
const NoProspectID = "0"

// DefaultConsumptionPeriod is used when the payload does not name a billing period.
const DefaultConsumptionPeriod = "bimonthly"

// DefaultYearPeriod labels the yearly savings figure when none is given.
const DefaultYearPeriod = "annual"

// CurrentSchemaVersion is the payload shape produced by MarshalJSON.
const CurrentSchemaVersion = "3"

// ProspectQuote is one normalized quotation for one prospect.
// It is built once per request and never mutated after enrichment.
type ProspectQuote struct {
	Name              string
	LastName          string
	ProspectID        string
	TerralinkID       string
	SystemProposed    SystemProposed
	SourceConsumption SourceConsumption
	CfeInfo           CfeInfo
	TerraenergyInfo   TerraenergyInfo
	Savings           Savings
}

// SystemProposed is the physical sizing of the proposed installation.
type SystemProposed struct {
	SystemPowerW    float64 `json:"system_power_w"`
	SystemEnergyKWh float64 `json:"system_energy_KWh"`
	RequiredAreaM2  float64 `json:"required_area_m2"`
}

// SourceConsumption is the prospect's historical usage.
type SourceConsumption struct {
	Period         string  `json:"period"`
	ConsumptionKWh float64 `json:"consumption_KWh"`
}

// CfeInfo describes the incumbent utility billing.
type CfeInfo struct {
	TariffTypeID           int     `json:"tariff_type_id"`
	TariffType             string  `json:"tariff_type"`
	PriceKWh               float64 `json:"price_KWh"`
	ActualBimonthlyPayment float64 `json:"actual_bimonthly_payment"`
}

// TerraenergyInfo is the proposed billing under the new system.
type TerraenergyInfo struct {
	PriceKWh         float64 `json:"price_KWh"`
	BimonthlyPayment float64 `json:"bimonthly_payment"`
	MonthlyPayment   float64 `json:"monthly_payment"`
}

// Savings figures arrive precomputed.
type Savings struct {
	Percentage       float64 `json:"percentage"`
	Period           string  `json:"period"`
	YearPeriod       string  `json:"year_period"`
	PeriodSaving     float64 `json:"period_saving"`
	YearPeriodSaving float64 `json:"year_period_saving"`
	EightYearsSaving float64 `json:"eight_years_saving"`
}

// QuoteDetails is the nested wire section of the current payload shape.
type QuoteDetails struct {
	SystemProposed    SystemProposed    `json:"system_proposed"`
	SourceConsumption SourceConsumption `json:"source_consumption"`
	CfeInfo           CfeInfo           `json:"cfe_info"`
	TerraenergyInfo   TerraenergyInfo   `json:"terraenergy_info"`
	Savings           Savings           `json:"savings"`
}

type prospectQuotePayload struct {
	SchemaVersion string       `json:"schema_version"`
	Name          string       `json:"name"`
	LastName      string       `json:"last_name"`
	ProspectID    string       `json:"prospect_id"`
	TerralinkID   string       `json:"terralink_id"`
	QuoteDetails  QuoteDetails `json:"quote_details"`
}

// MarshalJSON writes the quote in the current request payload shape.
func (q ProspectQuote) MarshalJSON() ([]byte, error) {
	return json.Marshal(prospectQuotePayload{
		SchemaVersion: CurrentSchemaVersion,
		Name:          q.Name,
		LastName:      q.LastName,
		ProspectID:    q.ProspectID,
		TerralinkID:   q.TerralinkID,
		QuoteDetails: QuoteDetails{
			SystemProposed:    q.SystemProposed,
			SourceConsumption: q.SourceConsumption,
			CfeInfo:           q.CfeInfo,
			TerraenergyInfo:   q.TerraenergyInfo,
			Savings:           q.Savings,
		},
	})
}

// FullName joins name and last name as supplied.
func (q ProspectQuote) FullName() string {
	switch {
	case q.Name == "":
		return q.LastName
	case q.LastName == "":
		return q.Name
	}
	return q.Name + " " + q.LastName
}

// ProjectNumber is the reference printed on the cover page.
func (q ProspectQuote) ProjectNumber() string {
	return q.TerralinkID
}

// HasProspectRecord is false when the prospect id carries the "0" sentinel.
func (q ProspectQuote) HasProspectRecord() bool {
	return q.ProspectID != NoProspectID
}
