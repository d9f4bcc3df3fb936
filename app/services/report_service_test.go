package services

import (
	"testing"
	"time"

	"spp-tuition/app/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordPayment(t *testing.T, svc *PaymentService, studentID, month, status string, amount int64) {
	t.Helper()
	_, err := svc.CreatePayment(testActor, CreatePaymentInput{
		StudentID:    studentID,
		Amount:       decimal.NewFromInt(amount),
		PaymentDate:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		PaymentMonth: month,
		Status:       status,
		Method:       "Cash",
	})
	require.NoError(t, err)
}

func TestStatusBreakdown(t *testing.T) {
	studentSvc, paymentSvc, reportSvc, _ := newTestServices()

	s1 := mustCreateStudent(t, studentSvc, "2024001")
	s2 := mustCreateStudent(t, studentSvc, "2024002")
	s3 := mustCreateStudent(t, studentSvc, "2024003")

	recordPayment(t, paymentSvc, s1.ID, "2024-01", "Paid", 500000)
	recordPayment(t, paymentSvc, s2.ID, "2024-01", "Pending", 500000)
	recordPayment(t, paymentSvc, s3.ID, "2024-01", "Pending", 450000)

	b, err := reportSvc.StatusBreakdown("2024-01")
	require.NoError(t, err)

	assert.Equal(t, 1, b.Paid)
	assert.Equal(t, 2, b.Pending)
	assert.Equal(t, 0, b.Overdue)
	assert.Equal(t, 3, b.Total)
	assert.Equal(t, b.Total, b.Paid+b.Pending+b.Overdue)

	// count / total * 100, rounded to one decimal.
	assert.InDelta(t, 33.3, b.PaidPct, 0.001)
	assert.InDelta(t, 66.7, b.PendingPct, 0.001)
	assert.Equal(t, 0.0, b.OverduePct)
}

func TestStatusBreakdownEmptyMonth(t *testing.T) {
	_, _, reportSvc, _ := newTestServices()

	b, err := reportSvc.StatusBreakdown("2024-06")
	require.NoError(t, err)

	assert.Equal(t, 0, b.Total)
	assert.Equal(t, 0.0, b.PaidPct)
	assert.Equal(t, 0.0, b.PendingPct)
	assert.Equal(t, 0.0, b.OverduePct)
}

func TestMonthlyRevenue(t *testing.T) {
	studentSvc, paymentSvc, reportSvc, _ := newTestServices()

	s1 := mustCreateStudent(t, studentSvc, "2024001")
	s2 := mustCreateStudent(t, studentSvc, "2024002")

	revenue, err := reportSvc.MonthlyRevenue("2024-01")
	require.NoError(t, err)
	assert.True(t, revenue.IsZero(), "empty month sums to zero, not null")

	recordPayment(t, paymentSvc, s1.ID, "2024-01", "Paid", 500000)
	recordPayment(t, paymentSvc, s2.ID, "2024-01", "Pending", 450000)

	// Only Paid rows count toward revenue.
	revenue, err = reportSvc.MonthlyRevenue("2024-01")
	require.NoError(t, err)
	assert.True(t, revenue.Equal(decimal.NewFromInt(500000)), "revenue is %s", revenue)

	recordPayment(t, paymentSvc, s2.ID, "2024-02", "Paid", 450000)

	revenue, err = reportSvc.MonthlyRevenue("2024-01")
	require.NoError(t, err)
	assert.True(t, revenue.Equal(decimal.NewFromInt(500000)), "other months do not leak in")
}

func TestDashboardSnapshot(t *testing.T) {
	studentSvc, paymentSvc, reportSvc, _ := newTestServices()

	current := models.CurrentMonth()

	s1 := mustCreateStudent(t, studentSvc, "2024001")
	s2 := mustCreateStudent(t, studentSvc, "2024002")
	s3, err := studentSvc.CreateStudent(testActor, StudentInput{
		StudentCode: "2023099",
		Name:        "Former Student",
		Class:       "XII-1",
		MonthlyFee:  decimal.NewFromInt(500000),
		Status:      "Inactive",
	})
	require.NoError(t, err)

	recordPayment(t, paymentSvc, s1.ID, current.String(), "Paid", 500000)
	recordPayment(t, paymentSvc, s2.ID, current.String(), "Pending", 500000)
	// Overdue obligations from past months stay on the dashboard.
	recordPayment(t, paymentSvc, s3.ID, "2023-11", "Overdue", 500000)
	recordPayment(t, paymentSvc, s1.ID, "2023-12", "Pending", 500000)

	stats, err := reportSvc.DashboardSnapshot()
	require.NoError(t, err)

	assert.Equal(t, 2, stats.ActiveStudents)
	assert.Equal(t, 2, stats.PaymentsThisMonth)
	assert.True(t, stats.RevenueThisMonth.Equal(decimal.NewFromInt(500000)), "revenue is %s", stats.RevenueThisMonth)
	assert.Equal(t, 2, stats.PendingPayments, "pending counts all months")
	assert.Equal(t, 1, stats.OverduePayments, "overdue counts all months")
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 33.3, round1(100.0/3))
	assert.Equal(t, 66.7, round1(200.0/3))
	assert.Equal(t, 50.0, round1(50))
	assert.Equal(t, 0.1, round1(0.05))
}
