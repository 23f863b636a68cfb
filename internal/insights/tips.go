package insights

import (
	"fmt"
	"time"

	"frotalog/internal/analytics"
	"frotalog/internal/utils"
)

// GoldenTips always returns exactly three tips: best route, shipper payment
// behavior and fleet age. Each falls back to a neutral "healthy" message
// when no anomaly is found.
func GoldenTips(s analytics.Snapshot, sum analytics.Summary, now time.Time) []Insight {
	return []Insight{
		bestRouteTip(sum),
		slowShipperTip(s),
		agingVehicleTip(s, now),
	}
}

// bestRouteTip picks the highest revenue-per-km route among routes with more
// than 1000 accumulated km; thinner routes are too noisy to recommend.
func bestRouteTip(sum analytics.Summary) Insight {
	bestIdx := -1
	var best float64
	for i, rt := range sum.Routes {
		if rt.Km <= 1000 {
			continue
		}
		perKm := rt.Bruto / rt.Km
		if bestIdx == -1 || perKm > best {
			bestIdx = i
			best = perKm
		}
	}
	if bestIdx == -1 {
		return Insight{
			Type:        TypeNeutral,
			Category:    "rotas",
			Title:       "Rotas",
			Description: "Ainda não há quilometragem suficiente para destacar uma rota.",
			ImpactScore: 40,
		}
	}
	rt := sum.Routes[bestIdx]
	return Insight{
		Type:        TypePositive,
		Category:    "rotas",
		Title:       fmt.Sprintf("Melhor rota: %s", rt.Destination),
		Description: fmt.Sprintf("Rende %s por km rodado. Priorize fretes nesse destino.", utils.FormatBRL(best)),
		ImpactScore: 70,
		Action:      "Priorizar fretes para esse destino",
	}
}

// slowShipperTip flags the slowest payer above 30 days.
func slowShipperTip(s analytics.Snapshot) Insight {
	worstID := ""
	worstDays := 0
	// deterministic scan order is not guaranteed over a map; pick the worst
	// by days and break ties by id
	for id, sh := range s.Shippers {
		if sh.AvgPaymentDays <= 30 {
			continue
		}
		if worstID == "" || sh.AvgPaymentDays > worstDays || (sh.AvgPaymentDays == worstDays && id < worstID) {
			worstID = id
			worstDays = sh.AvgPaymentDays
		}
	}
	if worstID == "" {
		return Insight{
			Type:        TypeNeutral,
			Category:    "embarcadores",
			Title:       "Embarcadores",
			Description: "Nenhum embarcador com prazo de pagamento acima de 30 dias.",
			ImpactScore: 40,
		}
	}
	sh := s.Shippers[worstID]
	return Insight{
		Type:        TypeNegative,
		Category:    "embarcadores",
		Title:       fmt.Sprintf("Pagamento lento: %s", sh.Name),
		Description: fmt.Sprintf("Prazo médio de %d dias para pagar. Negocie adiantamento maior.", sh.AvgPaymentDays),
		ImpactScore: 65,
		Action:      "Negociar prazo ou adiantamento",
	}
}

// agingVehicleTip flags vehicles past 100000 km or older than 10 years.
func agingVehicleTip(s analytics.Snapshot, now time.Time) Insight {
	worstID := ""
	var worstKm float64
	for id, v := range s.Vehicles {
		old := v.TotalKm > 100000 || (v.Year > 0 && now.Year()-v.Year > 10)
		if !old {
			continue
		}
		if worstID == "" || v.TotalKm > worstKm || (v.TotalKm == worstKm && id < worstID) {
			worstID = id
			worstKm = v.TotalKm
		}
	}
	if worstID == "" {
		return Insight{
			Type:        TypeNeutral,
			Category:    "frota",
			Title:       "Frota",
			Description: "Nenhum veículo com desgaste ou idade críticos.",
			ImpactScore: 40,
		}
	}
	v := s.Vehicles[worstID]
	return Insight{
		Type:        TypeNegative,
		Category:    "frota",
		Title:       fmt.Sprintf("Veículo desgastado: %s", v.Plate),
		Description: fmt.Sprintf("%.0f km acumulados (ano %d). Planeje renovação ou revisão geral.", v.TotalKm, v.Year),
		ImpactScore: 60,
		Action:      "Planejar renovação da frota",
	}
}
