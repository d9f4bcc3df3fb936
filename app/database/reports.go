package database

import (
	"database/sql"

	"spp-tuition/app/models"

	"github.com/shopspring/decimal"
)

// ReportStore runs the aggregation queries behind the dashboard and the
// monthly status breakdown. Everything is computed on demand; nothing here
// mutates state.
type ReportStore struct {
	DB *sql.DB
}

func NewReportStore(db *sql.DB) *ReportStore {
	return &ReportStore{DB: db}
}

// CountByStatus returns per-status payment counts for one month.
func (rs *ReportStore) CountByStatus(month models.Month) (paid, pending, overdue int, err error) {
	query := `SELECT
	            COUNT(*) FILTER (WHERE status = 'Paid'),
	            COUNT(*) FILTER (WHERE status = 'Pending'),
	            COUNT(*) FILTER (WHERE status = 'Overdue')
	          FROM payments WHERE payment_month = $1`
	err = rs.DB.QueryRow(query, month).Scan(&paid, &pending, &overdue)
	return paid, pending, overdue, err
}

// MonthlyRevenue sums Paid payment amounts for one month, zero when empty.
func (rs *ReportStore) MonthlyRevenue(month models.Month) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE payment_month = $1 AND status = 'Paid'`
	err := rs.DB.QueryRow(query, month).Scan(&total)
	return total, err
}

// CountActiveStudents counts students with status Active.
func (rs *ReportStore) CountActiveStudents() (int, error) {
	var count int
	err := rs.DB.QueryRow(`SELECT COUNT(*) FROM students WHERE status = 'Active'`).Scan(&count)
	return count, err
}

// CountPaymentsInMonth counts all payments recorded for one month.
func (rs *ReportStore) CountPaymentsInMonth(month models.Month) (int, error) {
	var count int
	err := rs.DB.QueryRow(`SELECT COUNT(*) FROM payments WHERE payment_month = $1`, month).Scan(&count)
	return count, err
}

// CountWithStatus counts payments with the given status across all months.
// Pending and overdue obligations do not expire at month end, so the
// dashboard counts them globally.
func (rs *ReportStore) CountWithStatus(status models.PaymentStatus) (int, error) {
	var count int
	err := rs.DB.QueryRow(`SELECT COUNT(*) FROM payments WHERE status = $1`, status).Scan(&count)
	return count, err
}
