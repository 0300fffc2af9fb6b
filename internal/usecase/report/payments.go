package report

import (
	"context"
	"strings"
)

type PaymentEntry struct {
	WorkOrderID uint    `json:"work_order_id"`
	Date        string  `json:"date"` // paid date, YYYY-MM-DD
	Customer    string  `json:"customer"`
	Service     string  `json:"service"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`
}

type PaymentsLedger struct {
	Entries []PaymentEntry `json:"entries"`
	Total   float64        `json:"total"`
}

type Payments struct {
	repo Repository
}

func NewPayments(repo Repository) *Payments {
	return &Payments{repo: repo}
}

// Execute lists payments for the year, optionally narrowed to a month
// (1-12) and a payment method.
func (uc *Payments) Execute(
	ctx context.Context,
	year int,
	month int,
	method string,
) (*PaymentsLedger, error) {

	orders, err := uc.repo.ListPaidWorkOrders(ctx, year)
	if err != nil {
		return nil, err
	}

	ledger := &PaymentsLedger{Entries: []PaymentEntry{}}

	for _, wo := range orders {
		if wo.PaidAt == nil {
			continue
		}
		if month > 0 && int(wo.PaidAt.Month()) != month {
			continue
		}
		if method != "" && !strings.EqualFold(wo.PaymentMethod, method) {
			continue
		}

		entry := PaymentEntry{
			WorkOrderID: wo.ID,
			Date:        wo.PaidAt.Format("2006-01-02"),
			Service:     wo.Service,
			Amount:      ParsePrice(wo.Price),
			Method:      wo.PaymentMethod,
		}
		if wo.Customer != nil {
			entry.Customer = wo.Customer.Name
		}

		ledger.Entries = append(ledger.Entries, entry)
		ledger.Total += entry.Amount
	}

	return ledger, nil
}
