package models

import "github.com/shopspring/decimal"

// StatusBreakdown holds per-status payment counts for one month, with
// percentages of the month's total rounded to one decimal place. When the
// month has no payments at all the percentages stay zero rather than being
// computed from an empty total.
type StatusBreakdown struct {
	Month      Month   `json:"month"`
	Paid       int     `json:"paid"`
	Pending    int     `json:"pending"`
	Overdue    int     `json:"overdue"`
	Total      int     `json:"total"`
	PaidPct    float64 `json:"paid_pct"`
	PendingPct float64 `json:"pending_pct"`
	OverduePct float64 `json:"overdue_pct"`
}

// DashboardStats are the headline counters for the admin dashboard.
// Revenue and the payment count are scoped to the current month; pending and
// overdue counts are global because an outstanding obligation stays
// outstanding until it is resolved, whatever month it belongs to.
type DashboardStats struct {
	ActiveStudents    int             `json:"active_students"`
	PaymentsThisMonth int             `json:"payments_this_month"`
	RevenueThisMonth  decimal.Decimal `json:"revenue_this_month"`
	PendingPayments   int             `json:"pending_payments"`
	OverduePayments   int             `json:"overdue_payments"`
}

// PaymentSummary aggregates a filtered payment listing for the payments page:
// per-status counts plus the total amount of Paid rows in the selection.
type PaymentSummary struct {
	Paid      int             `json:"paid"`
	Pending   int             `json:"pending"`
	Overdue   int             `json:"overdue"`
	PaidTotal decimal.Decimal `json:"paid_total"`
}
