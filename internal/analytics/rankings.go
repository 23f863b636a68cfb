package analytics

import (
	"fmt"
	"sort"

	"frotalog/internal/domain"
)

// Metric selects the ranking dimension for entity leaderboards.
type Metric func(EntityTotals) float64

func ByLucro(e EntityTotals) float64    { return e.Lucro }
func ByBruto(e EntityTotals) float64    { return e.Bruto }
func ByComissao(e EntityTotals) float64 { return e.Comissao }

// TopEntities returns the top-n entries by metric, descending. The sort is
// stable over first-seen order, so ties keep the order trips were supplied
// in. Unresolved ("unk") rows never rank.
func TopEntities(list []EntityTotals, metric Metric, n int) []EntityTotals {
	out := make([]EntityTotals, 0, len(list))
	for _, e := range list {
		if e.Key == domain.UnknownKey {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return metric(out[i]) > metric(out[j])
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// TopRoutes ranks routes by accumulated profit, descending, stable.
func TopRoutes(list []RouteTotals, n int) []RouteTotals {
	out := make([]RouteTotals, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Lucro > out[j].Lucro
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// TopShippers ranks shippers by accumulated gross revenue, descending.
func TopShippers(list []ShipperTotals, n int) []ShipperTotals {
	out := make([]ShipperTotals, 0, len(list))
	for _, s := range list {
		if s.Key == domain.UnknownKey {
			continue
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Bruto > out[j].Bruto
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// MarginRatio renders lucro/bruto as a percentage with one decimal. Zero
// revenue yields "0.0" instead of NaN; dashboards rely on that fallback.
func MarginRatio(lucro, bruto float64) string {
	if bruto == 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", lucro/bruto*100)
}
