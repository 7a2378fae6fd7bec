package seed

import (
	"fmt"
	"sort"
	"time"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// MonthlySales is one revenue bucket of the sales series.
type MonthlySales struct {
	Month   string  `json:"month"` // YYYY-MM
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// MonthlyGrowth is one bucket of the cumulative customer growth series.
type MonthlyGrowth struct {
	Month        string `json:"month"` // YYYY-MM
	NewCustomers int    `json:"newCustomers"`
	Total        int    `json:"total"`
}

// TaskCompletion breaks tasks down by status.
type TaskCompletion struct {
	ByStatus       map[string]int `json:"byStatus"`
	CompletionRate float64        `json:"completionRate"`
}

// ProductStat ranks one product by realized revenue.
type ProductStat struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Revenue   float64 `json:"revenue"`
	Quantity  int     `json:"quantity"`
}

// BusinessData bundles the derived reporting projections. These are
// views, not persisted entities; every call recomputes them from the
// current store contents.
type BusinessData struct {
	Sales              []MonthlySales  `json:"salesData"`
	CustomerGrowth     []MonthlyGrowth `json:"customerGrowth"`
	TaskCompletion     TaskCompletion  `json:"taskCompletion"`
	ProductPerformance []ProductStat   `json:"productPerformance"`
}

// BusinessData scans the store and derives the reporting projections.
func (s *Seeder) BusinessData() (*BusinessData, error) {
	sales, err := s.salesSeries()
	if err != nil {
		return nil, fmt.Errorf("deriving sales series: %w", err)
	}
	growth, err := s.growthSeries()
	if err != nil {
		return nil, fmt.Errorf("deriving customer growth: %w", err)
	}
	completion, err := s.taskCompletion()
	if err != nil {
		return nil, fmt.Errorf("deriving task completion: %w", err)
	}
	performance, err := s.productPerformance()
	if err != nil {
		return nil, fmt.Errorf("deriving product performance: %w", err)
	}
	return &BusinessData{
		Sales:              sales,
		CustomerGrowth:     growth,
		TaskCompletion:     completion,
		ProductPerformance: performance,
	}, nil
}

func monthOf(t time.Time) string {
	return t.UTC().Format("2006-01")
}

func (s *Seeder) salesSeries() ([]MonthlySales, error) {
	orders, err := s.st.Orders().All(0)
	if err != nil {
		return nil, err
	}
	buckets := make(map[string]*MonthlySales)
	for _, o := range orders {
		m := monthOf(o.OrderDate)
		b, ok := buckets[m]
		if !ok {
			b = &MonthlySales{Month: m}
			buckets[m] = b
		}
		b.Revenue += o.TotalAmount
		b.Orders++
	}
	series := make([]MonthlySales, 0, len(buckets))
	for _, b := range buckets {
		series = append(series, *b)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Month < series[j].Month })
	return series, nil
}

func (s *Seeder) growthSeries() ([]MonthlyGrowth, error) {
	customers, err := s.st.Customers().All(0)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, c := range customers {
		counts[monthOf(c.CreateDate)]++
	}
	months := make([]string, 0, len(counts))
	for m := range counts {
		months = append(months, m)
	}
	sort.Strings(months)

	series := make([]MonthlyGrowth, 0, len(months))
	total := 0
	for _, m := range months {
		total += counts[m]
		series = append(series, MonthlyGrowth{Month: m, NewCustomers: counts[m], Total: total})
	}
	return series, nil
}

func (s *Seeder) taskCompletion() (TaskCompletion, error) {
	tasks, err := s.st.Tasks().All(0)
	if err != nil {
		return TaskCompletion{}, err
	}
	byStatus := make(map[string]int)
	for _, t := range tasks {
		byStatus[t.Status]++
	}
	rate := 0.0
	if len(tasks) > 0 {
		rate = float64(byStatus[types.TaskCompleted]) / float64(len(tasks))
	}
	return TaskCompletion{ByStatus: byStatus, CompletionRate: rate}, nil
}

func (s *Seeder) productPerformance() ([]ProductStat, error) {
	orders, err := s.st.Orders().All(0)
	if err != nil {
		return nil, err
	}
	products, err := s.st.Products().All(0)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	stats := make(map[int64]*ProductStat)
	for _, o := range orders {
		for _, item := range o.Items {
			st, ok := stats[item.ProductID]
			if !ok {
				st = &ProductStat{ProductID: item.ProductID, Name: names[item.ProductID]}
				stats[item.ProductID] = st
			}
			st.Revenue += item.TotalPrice
			st.Quantity += item.Quantity
		}
	}

	ranked := make([]ProductStat, 0, len(stats))
	for _, st := range stats {
		ranked = append(ranked, *st)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Revenue != ranked[j].Revenue {
			return ranked[i].Revenue > ranked[j].Revenue
		}
		if ranked[i].Quantity != ranked[j].Quantity {
			return ranked[i].Quantity > ranked[j].Quantity
		}
		return ranked[i].ProductID < ranked[j].ProductID
	})
	return ranked, nil
}
