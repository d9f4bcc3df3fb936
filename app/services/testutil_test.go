package services

import (
	"fmt"
	"sort"
	"time"

	"spp-tuition/app/database"
	"spp-tuition/app/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// memDB backs the in-memory store fakes so the services can be exercised
// without a database.
type memDB struct {
	students map[string]*models.Student
	payments map[string]*models.Payment
}

func newMemDB() *memDB {
	return &memDB{
		students: make(map[string]*models.Student),
		payments: make(map[string]*models.Payment),
	}
}

func newTestServices() (*StudentService, *PaymentService, *ReportService, *memAudit) {
	db := newMemDB()
	audit := &memAudit{}
	students := &memStudentStore{db: db}
	payments := &memPaymentStore{db: db}
	reports := &memReportStore{db: db}
	return NewStudentService(students, audit),
		NewPaymentService(payments, students, audit),
		NewReportService(reports),
		audit
}

type auditEvent struct {
	ActorID     string
	Action      string
	Description string
}

type memAudit struct {
	events []auditEvent
}

func (a *memAudit) Log(actor Actor, action, description string) {
	a.events = append(a.events, auditEvent{ActorID: actor.ID, Action: action, Description: description})
}

type memStudentStore struct {
	db *memDB
}

func (s *memStudentStore) Create(st *models.Student) error {
	for _, existing := range s.db.students {
		if existing.StudentCode == st.StudentCode {
			return database.ErrDuplicateStudentCode
		}
	}
	st.ID = uuid.NewString()
	st.CreatedAt = time.Now()
	st.UpdatedAt = st.CreatedAt
	cp := *st
	s.db.students[st.ID] = &cp
	return nil
}

func (s *memStudentStore) GetByID(id string) (*models.Student, error) {
	st, ok := s.db.students[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	cp := *st
	return &cp, nil
}

func (s *memStudentStore) GetByCode(code string) (*models.Student, error) {
	for _, st := range s.db.students {
		if st.StudentCode == code {
			cp := *st
			return &cp, nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *memStudentStore) Update(st *models.Student) (bool, error) {
	existing, ok := s.db.students[st.ID]
	if !ok {
		return false, nil
	}
	for id, other := range s.db.students {
		if id != st.ID && other.StudentCode == st.StudentCode {
			return false, database.ErrDuplicateStudentCode
		}
	}
	cp := *st
	cp.CreatedAt = existing.CreatedAt
	cp.UpdatedAt = time.Now()
	s.db.students[st.ID] = &cp
	return true, nil
}

func (s *memStudentStore) DeleteIfNoPayments(id string) (int, error) {
	if _, ok := s.db.students[id]; !ok {
		return 0, database.ErrNotFound
	}
	count := 0
	for _, p := range s.db.payments {
		if p.StudentID == id {
			count++
		}
	}
	if count > 0 {
		return count, nil
	}
	delete(s.db.students, id)
	return 0, nil
}

func (s *memStudentStore) List(f models.StudentFilters) ([]*models.Student, int, error) {
	var out []*models.Student
	for _, st := range s.db.students {
		if f.Status != "" && string(st.Status) != f.Status {
			continue
		}
		cp := *st
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, len(out), nil
}

func (s *memStudentStore) NextCode(year int) (string, error) {
	prefix := fmt.Sprintf("%d", year)
	max := 0
	for _, st := range s.db.students {
		var y, n int
		if _, err := fmt.Sscanf(st.StudentCode, "%4d%3d", &y, &n); err == nil && fmt.Sprintf("%d", y) == prefix && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%03d", prefix, max+1), nil
}

type memPaymentStore struct {
	db *memDB
}

func (s *memPaymentStore) Create(p *models.Payment) error {
	for _, existing := range s.db.payments {
		if existing.StudentID == p.StudentID && existing.PaymentMonth == p.PaymentMonth {
			return database.ErrDuplicatePayment
		}
	}
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	s.db.payments[p.ID] = &cp
	return nil
}

func (s *memPaymentStore) GetByID(id string) (*models.Payment, error) {
	p, ok := s.db.payments[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *memPaymentStore) GetByStudentMonth(studentID string, month models.Month) (*models.Payment, error) {
	for _, p := range s.db.payments {
		if p.StudentID == studentID && p.PaymentMonth == month {
			cp := *p
			return &cp, nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *memPaymentStore) Update(p *models.Payment) (bool, error) {
	existing, ok := s.db.payments[p.ID]
	if !ok {
		return false, nil
	}
	cp := *p
	cp.CreatedAt = existing.CreatedAt
	cp.UpdatedAt = time.Now()
	s.db.payments[p.ID] = &cp
	return true, nil
}

func (s *memPaymentStore) Delete(id string) (bool, error) {
	if _, ok := s.db.payments[id]; !ok {
		return false, nil
	}
	delete(s.db.payments, id)
	return true, nil
}

func (s *memPaymentStore) List(f models.PaymentFilters) ([]*models.PaymentWithStudent, int, error) {
	var out []*models.PaymentWithStudent
	for _, p := range s.db.payments {
		if f.Status != "" && string(p.Status) != f.Status {
			continue
		}
		if f.Month != "" && string(p.PaymentMonth) != f.Month {
			continue
		}
		row := &models.PaymentWithStudent{Payment: *p}
		if st, ok := s.db.students[p.StudentID]; ok {
			row.StudentName = st.Name
			row.StudentCode = st.StudentCode
			row.Class = st.Class
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaymentDate.After(out[j].PaymentDate) })
	return out, len(out), nil
}

func (s *memPaymentStore) Summarize(f models.PaymentFilters) (*models.PaymentSummary, error) {
	summary := &models.PaymentSummary{PaidTotal: decimal.Zero}
	for _, p := range s.db.payments {
		if f.Month != "" && string(p.PaymentMonth) != f.Month {
			continue
		}
		switch p.Status {
		case models.PaymentPaid:
			summary.Paid++
			summary.PaidTotal = summary.PaidTotal.Add(p.Amount)
		case models.PaymentPending:
			summary.Pending++
		case models.PaymentOverdue:
			summary.Overdue++
		}
	}
	return summary, nil
}

type memReportStore struct {
	db *memDB
}

func (s *memReportStore) CountByStatus(month models.Month) (paid, pending, overdue int, err error) {
	for _, p := range s.db.payments {
		if p.PaymentMonth != month {
			continue
		}
		switch p.Status {
		case models.PaymentPaid:
			paid++
		case models.PaymentPending:
			pending++
		case models.PaymentOverdue:
			overdue++
		}
	}
	return paid, pending, overdue, nil
}

func (s *memReportStore) MonthlyRevenue(month models.Month) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range s.db.payments {
		if p.PaymentMonth == month && p.Status == models.PaymentPaid {
			total = total.Add(p.Amount)
		}
	}
	return total, nil
}

func (s *memReportStore) CountActiveStudents() (int, error) {
	count := 0
	for _, st := range s.db.students {
		if st.Status == models.StudentActive {
			count++
		}
	}
	return count, nil
}

func (s *memReportStore) CountPaymentsInMonth(month models.Month) (int, error) {
	count := 0
	for _, p := range s.db.payments {
		if p.PaymentMonth == month {
			count++
		}
	}
	return count, nil
}

func (s *memReportStore) CountWithStatus(status models.PaymentStatus) (int, error) {
	count := 0
	for _, p := range s.db.payments {
		if p.Status == status {
			count++
		}
	}
	return count, nil
}
