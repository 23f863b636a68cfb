package domain

// CalculateTripFinance derives the financial result of a single trip. Pure
// and deterministic: same inputs always produce the same output, no rounding
// is applied. Commission percentages come from the driver's custom override
// when set, otherwise from the tenant config; absent fields count as zero.
func CalculateTripFinance(trip Trip, vehicle Vehicle, driver Driver, cfg ProfileConfig) FinancialResults {
	percFrete := cfg.PercMotFrete
	percDiaria := cfg.PercMotDiaria
	if cc := driver.CustomCommission; cc != nil {
		if cc.Frete != nil {
			percFrete = *cc.Frete
		}
		if cc.Diaria != nil {
			percDiaria = *cc.Diaria
		}
	}

	totalBruto := trip.FreteSeco + trip.Diarias
	comissao := trip.FreteSeco*(percFrete/100) + trip.Diarias*(percDiaria/100)
	saldo := totalBruto - trip.Adiantamento
	lucroReal := totalBruto - (comissao + trip.Combustivel + trip.OutrasDespesas)

	lucroSociety := lucroReal
	if vehicle.Type == VehicleSociedade {
		lucroSociety = lucroReal * (vehicle.SocietySplitFactor / 100)
	}

	return FinancialResults{
		TotalBruto:        totalBruto,
		ComissaoMotorista: comissao,
		SaldoAReceber:     saldo,
		LucroLiquidoReal:  lucroReal,
		LucroSociety:      lucroSociety,
	}
}
