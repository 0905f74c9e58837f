package services

import "github.com/terraenergy/prospect-quote-api/internal/models"

// Payload schema versions accepted by Normalize.
const (
	SchemaV1 = "1" // system_proposed top-level, savings and billing under quote_details.financials
	SchemaV2 = "2" // system_proposed top-level, flat quote_details
	SchemaV3 = models.CurrentSchemaVersion
)

type schemaAdapter func(p payload) models.ProspectQuote

var schemaAdapters = map[string]schemaAdapter{
	SchemaV1: adaptV1,
	SchemaV2: adaptV2,
	SchemaV3: adaptV3,
}

// adapterFor falls back to the current shape for absent or unknown versions.
func adapterFor(version string) schemaAdapter {
	if adapter, ok := schemaAdapters[version]; ok {
		return adapter
	}
	return adaptV3
}

func adaptV3(p payload) models.ProspectQuote {
	q := identityOf(p)
	details := p.section("quote_details")
	q.SystemProposed = systemProposedOf(details.section("system_proposed"))
	fillDetails(&q, details)
	return q
}

func adaptV2(p payload) models.ProspectQuote {
	q := identityOf(p)
	q.SystemProposed = systemProposedOf(p.section("system_proposed"))
	fillDetails(&q, p.section("quote_details"))
	return q
}

// adaptV1 maps the first payload generation. It carried no energy figure,
// no price per kWh and no eight-year saving, so those stay zero.
func adaptV1(p payload) models.ProspectQuote {
	q := identityOf(p)
	q.SystemProposed = systemProposedOf(p.section("system_proposed"))

	details := p.section("quote_details")
	q.SourceConsumption = models.SourceConsumption{
		Period: models.DefaultConsumptionPeriod,
	}
	q.CfeInfo = models.CfeInfo{
		TariffTypeID:           details.id("cfe_info", "tariff_type_id"),
		TariffType:             details.str("cfe_info", "tariff_type"),
		ActualBimonthlyPayment: details.num("source_consumption", "average_bimonthly_bill_mxn"),
	}

	financials := details.section("financials")
	q.TerraenergyInfo = models.TerraenergyInfo{
		BimonthlyPayment: financials.num("new_billing", "total_bimonthly_payment_mxn"),
		MonthlyPayment:   financials.num("new_billing", "monthly_lease_mxn"),
	}
	q.Savings = models.Savings{
		Percentage:       financials.num("savings", "percentage"),
		Period:           models.DefaultConsumptionPeriod,
		YearPeriod:       models.DefaultYearPeriod,
		PeriodSaving:     financials.num("savings", "bimonthly_mxn"),
		YearPeriodSaving: financials.num("savings", "annual_mxn"),
	}
	return q
}

func identityOf(p payload) models.ProspectQuote {
	return models.ProspectQuote{
		Name:        p.str("name"),
		LastName:    p.str("last_name"),
		ProspectID:  p.str("prospect_id"),
		TerralinkID: p.str("terralink_id"),
	}
}

func systemProposedOf(s payload) models.SystemProposed {
	return models.SystemProposed{
		SystemPowerW:    s.num("system_power_w"),
		SystemEnergyKWh: s.num("system_energy_KWh"),
		RequiredAreaM2:  s.num("required_area_m2"),
	}
}

func fillDetails(q *models.ProspectQuote, details payload) {
	q.SourceConsumption = models.SourceConsumption{
		Period:         details.label(models.DefaultConsumptionPeriod, "source_consumption", "period"),
		ConsumptionKWh: details.num("source_consumption", "consumption_KWh"),
	}
	q.CfeInfo = models.CfeInfo{
		TariffTypeID:           details.id("cfe_info", "tariff_type_id"),
		TariffType:             details.str("cfe_info", "tariff_type"),
		PriceKWh:               details.num("cfe_info", "price_KWh"),
		ActualBimonthlyPayment: details.num("cfe_info", "actual_bimonthly_payment"),
	}
	q.TerraenergyInfo = models.TerraenergyInfo{
		PriceKWh:         details.num("terraenergy_info", "price_KWh"),
		BimonthlyPayment: details.num("terraenergy_info", "bimonthly_payment"),
		MonthlyPayment:   details.num("terraenergy_info", "monthly_payment"),
	}
	q.Savings = models.Savings{
		Percentage:       details.num("savings", "percentage"),
		Period:           details.label(models.DefaultConsumptionPeriod, "savings", "period"),
		YearPeriod:       details.label(models.DefaultYearPeriod, "savings", "year_period"),
		PeriodSaving:     details.num("savings", "period_saving"),
		YearPeriodSaving: details.num("savings", "year_period_saving"),
		EightYearsSaving: details.num("savings", "eight_years_saving"),
	}
}
