package dashboard

import "github.com/sawpanic/defiboard/internal/domain/portfolio"

// AllocationRow is one holding in the allocation view.
type AllocationRow struct {
	Name            string  `json:"name"`
	Allocation      float64 `json:"allocation"`
	AllocationLabel string  `json:"allocation_label"`
	AllocationWidth string  `json:"allocation_width"`
	Value           string  `json:"value"`
	Risk            string  `json:"risk"`
}

// AllocationPanelTitle heads the allocation panel.
const AllocationPanelTitle = "Portfolio Allocation"

// AllocationView is the portfolio allocation panel.
type AllocationView struct {
	Title     string          `json:"title"`
	Rows      []AllocationRow `json:"rows"`
	Total     float64         `json:"total"`
	TotalText string          `json:"total_text"`
}

// TotalValue sums asset values.
func TotalValue(assets []portfolio.PortfolioAsset) float64 {
	var total float64
	for _, a := range assets {
		total += a.Value
	}
	return total
}

// Allocation builds the allocation rows and footer total.
func Allocation(assets []portfolio.PortfolioAsset) AllocationView {
	rows := make([]AllocationRow, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, AllocationRow{
			Name:            a.Name,
			Allocation:      a.Allocation,
			AllocationLabel: Width(a.Allocation),
			AllocationWidth: Width(a.Allocation),
			Value:           USD(a.Value),
			Risk:            FractionPercent(a.Risk),
		})
	}

	total := TotalValue(assets)
	return AllocationView{
		Title:     AllocationPanelTitle,
		Rows:      rows,
		Total:     total,
		TotalText: USD(total),
	}
}
