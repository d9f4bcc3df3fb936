package services

import (
	"log"
	"math"

	"spp-tuition/app/models"

	"github.com/shopspring/decimal"
)

// ReportStore is the read-only aggregation boundary over the ledger.
type ReportStore interface {
	CountByStatus(month models.Month) (paid, pending, overdue int, err error)
	MonthlyRevenue(month models.Month) (decimal.Decimal, error)
	CountActiveStudents() (int, error)
	CountPaymentsInMonth(month models.Month) (int, error)
	CountWithStatus(status models.PaymentStatus) (int, error)
}

// ReportService derives dashboard counters and status breakdowns from the
// payment ledger. Nothing is cached; every call reflects the latest
// committed writes.
type ReportService struct {
	reports ReportStore
}

func NewReportService(reports ReportStore) *ReportService {
	return &ReportService{reports: reports}
}

// round1 rounds to one decimal place for percentage displays.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// StatusBreakdown returns exact per-status counts for one month with
// percentages of the month's total. With no payments at all the percentages
// are left at zero instead of dividing by an empty total.
func (rs *ReportService) StatusBreakdown(month models.Month) (*models.StatusBreakdown, error) {
	paid, pending, overdue, err := rs.reports.CountByStatus(month)
	if err != nil {
		log.Printf("Status breakdown: query failed: %v", err)
		return nil, &StoreError{Op: "status breakdown", Err: err}
	}

	b := &models.StatusBreakdown{
		Month:   month,
		Paid:    paid,
		Pending: pending,
		Overdue: overdue,
		Total:   paid + pending + overdue,
	}
	if b.Total > 0 {
		total := float64(b.Total)
		b.PaidPct = round1(float64(paid) / total * 100)
		b.PendingPct = round1(float64(pending) / total * 100)
		b.OverduePct = round1(float64(overdue) / total * 100)
	}
	return b, nil
}

// MonthlyRevenue sums Paid amounts for one month; zero when nothing matches.
func (rs *ReportService) MonthlyRevenue(month models.Month) (decimal.Decimal, error) {
	total, err := rs.reports.MonthlyRevenue(month)
	if err != nil {
		log.Printf("Monthly revenue: query failed: %v", err)
		return decimal.Zero, &StoreError{Op: "monthly revenue", Err: err}
	}
	return total, nil
}

// DashboardSnapshot composes the headline counters. Payments and revenue
// are scoped to the current month; pending and overdue counts cover all
// months because unresolved obligations stay outstanding past month end.
func (rs *ReportService) DashboardSnapshot() (*models.DashboardStats, error) {
	currentMonth := models.CurrentMonth()
	stats := &models.DashboardStats{}

	var err error
	if stats.ActiveStudents, err = rs.reports.CountActiveStudents(); err != nil {
		log.Printf("Dashboard: active students query failed: %v", err)
		return nil, &StoreError{Op: "dashboard snapshot", Err: err}
	}
	if stats.PaymentsThisMonth, err = rs.reports.CountPaymentsInMonth(currentMonth); err != nil {
		log.Printf("Dashboard: payment count query failed: %v", err)
		return nil, &StoreError{Op: "dashboard snapshot", Err: err}
	}
	if stats.RevenueThisMonth, err = rs.reports.MonthlyRevenue(currentMonth); err != nil {
		log.Printf("Dashboard: revenue query failed: %v", err)
		return nil, &StoreError{Op: "dashboard snapshot", Err: err}
	}
	if stats.PendingPayments, err = rs.reports.CountWithStatus(models.PaymentPending); err != nil {
		log.Printf("Dashboard: pending count query failed: %v", err)
		return nil, &StoreError{Op: "dashboard snapshot", Err: err}
	}
	if stats.OverduePayments, err = rs.reports.CountWithStatus(models.PaymentOverdue); err != nil {
		log.Printf("Dashboard: overdue count query failed: %v", err)
		return nil, &StoreError{Op: "dashboard snapshot", Err: err}
	}
	return stats, nil
}
