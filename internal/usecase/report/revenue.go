package report

import (
	"context"
	"sort"
)

// MileageRate is the fixed per-mile deduction estimate.
const MileageRate = 0.67

type MonthTotals struct {
	Month   int     `json:"month"`
	Gross   float64 `json:"gross"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

type ServiceRevenue struct {
	Service string  `json:"service"`
	Revenue float64 `json:"revenue"`
	Jobs    int     `json:"jobs"`
}

type CustomerSpend struct {
	CustomerID uint    `json:"customer_id"`
	Name       string  `json:"name"`
	Spend      float64 `json:"spend"`
	Jobs       int     `json:"jobs"`
}

type RevenueReport struct {
	Year             int              `json:"year"`
	Months           []MonthTotals    `json:"months"`
	ByService        []ServiceRevenue `json:"by_service"`
	TopCustomers     []CustomerSpend  `json:"top_customers"`
	TotalGross       float64          `json:"total_gross"`
	TotalExpense     float64          `json:"total_expense"`
	TotalNet         float64          `json:"total_net"`
	TotalMileage     float64          `json:"total_mileage"`
	MileageDeduction float64          `json:"mileage_deduction"`
}

type Revenue struct {
	repo Repository
}

func NewRevenue(repo Repository) *Revenue {
	return &Revenue{repo: repo}
}

// Execute aggregates paid work orders and expenses into the yearly
// revenue view. Prices are parsed defensively; a malformed price row
// contributes zero rather than failing the report.
func (uc *Revenue) Execute(ctx context.Context, year int) (*RevenueReport, error) {
	orders, err := uc.repo.ListPaidWorkOrders(ctx, year)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.repo.ListExpenses(ctx, year, 0)
	if err != nil {
		return nil, err
	}

	report := &RevenueReport{Year: year}

	months := make([]MonthTotals, 12)
	for i := range months {
		months[i].Month = i + 1
	}

	byService := make(map[string]*ServiceRevenue)
	byCustomer := make(map[uint]*CustomerSpend)

	for _, wo := range orders {
		amount := ParsePrice(wo.Price)
		report.TotalGross += amount
		report.TotalMileage += wo.Mileage

		if wo.PaidAt != nil {
			months[int(wo.PaidAt.Month())-1].Gross += amount
		}

		sr, ok := byService[wo.Service]
		if !ok {
			sr = &ServiceRevenue{Service: wo.Service}
			byService[wo.Service] = sr
		}
		sr.Revenue += amount
		sr.Jobs++

		if wo.CustomerID != nil {
			cs, ok := byCustomer[*wo.CustomerID]
			if !ok {
				cs = &CustomerSpend{CustomerID: *wo.CustomerID}
				if wo.Customer != nil {
					cs.Name = wo.Customer.Name
				}
				byCustomer[*wo.CustomerID] = cs
			}
			cs.Spend += amount
			cs.Jobs++
		}
	}

	for _, e := range expenses {
		report.TotalExpense += e.Amount
		if m := expenseMonth(e.Date); m >= 1 && m <= 12 {
			months[m-1].Expense += e.Amount
		}
	}

	for i := range months {
		months[i].Net = months[i].Gross - months[i].Expense
	}
	report.Months = months
	report.TotalNet = report.TotalGross - report.TotalExpense
	report.MileageDeduction = report.TotalMileage * MileageRate

	for _, sr := range byService {
		report.ByService = append(report.ByService, *sr)
	}
	sort.Slice(report.ByService, func(i, j int) bool {
		return report.ByService[i].Revenue > report.ByService[j].Revenue
	})

	for _, cs := range byCustomer {
		report.TopCustomers = append(report.TopCustomers, *cs)
	}
	sort.Slice(report.TopCustomers, func(i, j int) bool {
		return report.TopCustomers[i].Spend > report.TopCustomers[j].Spend
	})
	if len(report.TopCustomers) > 10 {
		report.TopCustomers = report.TopCustomers[:10]
	}

	return report, nil
}

// expenseMonth pulls the month out of a YYYY-MM-DD date string; 0 when
// the string is malformed.
func expenseMonth(date string) int {
	if len(date) < 7 {
		return 0
	}
	m := 0
	for _, c := range date[5:7] {
		if c < '0' || c > '9' {
			return 0
		}
		m = m*10 + int(c-'0')
	}
	return m
}
