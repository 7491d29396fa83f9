package entity

import "sort"

// ServiceCost represents the accumulated cost for a meter category.
type ServiceCost struct {
	ServiceName string  `json:"service_name"`
	Cost        float64 `json:"cost"`
}

// ResourceCost represents the accumulated cost for a simplified resource name.
type ResourceCost struct {
	ResourceName string  `json:"resource_name"`
	Cost         float64 `json:"cost"`
}

// CostSummary is the aggregation result of one billing month.
// ByCategory and ByResource keep the order in which each key was first seen.
type CostSummary struct {
	Period      string         `json:"period"`
	SourceFile  string         `json:"source_file,omitempty"`
	Total       float64        `json:"total"`
	RecordCount int            `json:"record_count"`
	ByCategory  []ServiceCost  `json:"costs_by_category"`
	ByResource  []ResourceCost `json:"costs_by_resource"`
}

// MonthlyCost represents the cost for a specific month, used for trend analysis.
type MonthlyCost struct {
	Month string  `json:"month"`
	Cost  float64 `json:"cost"`
}

// CostsByCategory returns the category breakdown as a map.
func (s CostSummary) CostsByCategory() map[string]float64 {
	out := make(map[string]float64, len(s.ByCategory))
	for _, sc := range s.ByCategory {
		out[sc.ServiceName] = sc.Cost
	}
	return out
}

// CostsByResource returns the resource breakdown as a map.
func (s CostSummary) CostsByResource() map[string]float64 {
	out := make(map[string]float64, len(s.ByResource))
	for _, rc := range s.ByResource {
		out[rc.ResourceName] = rc.Cost
	}
	return out
}

// SortedCategories returns a copy of ByCategory ordered by cost, highest first.
// Equal costs keep their first-seen order.
func (s CostSummary) SortedCategories() []ServiceCost {
	sorted := make([]ServiceCost, len(s.ByCategory))
	copy(sorted, s.ByCategory)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Cost > sorted[j].Cost
	})
	return sorted
}

// SortedResources returns a copy of ByResource ordered by cost, highest first.
func (s CostSummary) SortedResources() []ResourceCost {
	sorted := make([]ResourceCost, len(s.ByResource))
	copy(sorted, s.ByResource)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Cost > sorted[j].Cost
	})
	return sorted
}

// IsEmpty reports whether no cost at all was detected for the month.
func (s CostSummary) IsEmpty() bool {
	return s.Total == 0
}

// MonthlyCost returns the trend entry for this summary.
func (s CostSummary) MonthlyCost() MonthlyCost {
	return MonthlyCost{Month: s.Period, Cost: s.Total}
}
