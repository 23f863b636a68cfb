package insights

import (
	"fmt"
	"sort"
	"time"

	"frotalog/internal/analytics"
	"frotalog/internal/domain"
	"frotalog/internal/utils"
)

type InsightType string

const (
	TypePositive   InsightType = "positive"
	TypeNegative   InsightType = "negative"
	TypeNeutral    InsightType = "neutral"
	TypePrediction InsightType = "prediction"
)

// Insight is one advisory record shown on the dashboard.
type Insight struct {
	Type        InsightType `json:"type"`
	Category    string      `json:"category"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	ImpactScore int         `json:"impactScore"`
	Action      string      `json:"action,omitempty"`
}

// Evaluate runs every rule over the snapshot. Rules are independent and
// order-insensitive; the result is sorted by impact score, descending. Empty
// collections skip the rules that need them, never error.
func Evaluate(s analytics.Snapshot, sum analytics.Summary, now time.Time) []Insight {
	out := []Insight{}
	out = append(out, fuelEfficiencyInsights(s, sum)...)
	if in, ok := revenueRunRate(sum, now); ok {
		out = append(out, in)
	}
	if in, ok := topDriverRevenue(sum); ok {
		out = append(out, in)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ImpactScore > out[j].ImpactScore
	})
	return out
}

// fuelEfficiencyInsights flags owned vehicles averaging strictly below
// 2.0 km/l. Shared (Sociedade) vehicles are the partner's fuel problem.
func fuelEfficiencyInsights(s analytics.Snapshot, sum analytics.Summary) []Insight {
	out := []Insight{}
	for _, vt := range sum.Vehicles {
		if vt.Key == domain.UnknownKey || vt.Liters <= 0 {
			continue
		}
		vehicle, ok := s.Vehicles[vt.Key]
		if !ok || vehicle.Type != domain.VehicleProprio {
			continue
		}
		kmPerLiter := vt.Km / vt.Liters
		if kmPerLiter < 2.0 {
			out = append(out, Insight{
				Type:        TypeNegative,
				Category:    "combustivel",
				Title:       fmt.Sprintf("Consumo alto: %s", vt.Name),
				Description: fmt.Sprintf("Média de %.2f km/l nas viagens registradas, abaixo do esperado de 2.0 km/l.", kmPerLiter),
				ImpactScore: 85,
				Action:      "Verificar manutenção do motor e calibragem dos pneus",
			})
		}
	}
	return out
}

// revenueRunRate projects the current month's revenue linearly from the
// month-to-date total.
func revenueRunRate(sum analytics.Summary, now time.Time) (Insight, bool) {
	key := now.Format("2006-01")
	mt, ok := sum.Monthly[key]
	if !ok || mt.Bruto <= 0 {
		return Insight{}, false
	}

	daysPassed := now.Day()
	daysInMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
	projected := (mt.Bruto / float64(daysPassed)) * float64(daysInMonth)

	return Insight{
		Type:        TypePrediction,
		Category:    "faturamento",
		Title:       "Projeção de faturamento do mês",
		Description: fmt.Sprintf("No ritmo atual, o faturamento deve fechar em %s (hoje: %s).", utils.FormatBRL(projected), utils.FormatBRL(mt.Bruto)),
		ImpactScore: 90,
	}, true
}

// topDriverRevenue highlights a driver whose paid trips grossed over 50k.
func topDriverRevenue(sum analytics.Summary) (Insight, bool) {
	paid := map[string]float64{}
	names := map[string]string{}
	for _, r := range sum.Results {
		if r.DriverKey == domain.UnknownKey || r.Trip.Status != domain.StatusPago {
			continue
		}
		paid[r.DriverKey] += r.Finance.TotalBruto
	}
	for _, dt := range sum.Drivers {
		names[dt.Key] = dt.Name
	}

	bestKey := ""
	var best float64
	for _, r := range sum.Results {
		// iterate results (not the map) to keep the pick deterministic
		if v, ok := paid[r.DriverKey]; ok && (bestKey == "" || v > best) {
			bestKey = r.DriverKey
			best = v
		}
	}

	if bestKey == "" || best <= 50000 {
		return Insight{}, false
	}
	return Insight{
		Type:        TypePositive,
		Category:    "motoristas",
		Title:       fmt.Sprintf("Destaque: %s", names[bestKey]),
		Description: fmt.Sprintf("Maior faturamento em viagens pagas: %s.", utils.FormatBRL(best)),
		ImpactScore: 75,
	}, true
}
