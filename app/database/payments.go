package database

import (
	"database/sql"
	"fmt"
	"strconv"

	"spp-tuition/app/models"
)

// PaymentStore runs payment ledger queries against Postgres.
type PaymentStore struct {
	DB *sql.DB
}

func NewPaymentStore(db *sql.DB) *PaymentStore {
	return &PaymentStore{DB: db}
}

// Create inserts a new payment row. The unique index on
// (student_id, payment_month) is the authoritative duplicate check; a
// violation surfaces as ErrDuplicatePayment.
func (ps *PaymentStore) Create(p *models.Payment) error {
	query := `INSERT INTO payments (student_id, amount, payment_date, payment_month, status, method, notes, created_by)
	          VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, '')::uuid)
	          RETURNING id, created_at, updated_at`
	err := ps.DB.QueryRow(query,
		p.StudentID, p.Amount, p.PaymentDate, p.PaymentMonth,
		p.Status, p.Method, p.Notes, p.CreatedBy,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if isUniqueViolation(err, "payments_student_month_key") {
		return ErrDuplicatePayment
	}
	return err
}

// GetByID returns one payment or ErrNotFound.
func (ps *PaymentStore) GetByID(id string) (*models.Payment, error) {
	p := &models.Payment{}
	var notes, createdBy sql.NullString
	query := `SELECT id, student_id, amount, payment_date, payment_month, status, method, notes, created_by, created_at, updated_at
	          FROM payments WHERE id = $1`
	err := ps.DB.QueryRow(query, id).Scan(
		&p.ID, &p.StudentID, &p.Amount, &p.PaymentDate, &p.PaymentMonth,
		&p.Status, &p.Method, &notes, &createdBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p.Notes = notes.String
	p.CreatedBy = createdBy.String
	return p, nil
}

// GetByStudentMonth returns the payment recorded for one obligation, or
// ErrNotFound when the month is still uncharged.
func (ps *PaymentStore) GetByStudentMonth(studentID string, month models.Month) (*models.Payment, error) {
	var id string
	query := `SELECT id FROM payments WHERE student_id = $1 AND payment_month = $2`
	err := ps.DB.QueryRow(query, studentID, month).Scan(&id)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return ps.GetByID(id)
}

// Update rewrites the mutable fields of a payment. The owning student and
// the obligation month are identity fields and are never touched.
func (ps *PaymentStore) Update(p *models.Payment) (bool, error) {
	query := `UPDATE payments
	          SET amount = $1, payment_date = $2, status = $3, method = $4, notes = NULLIF($5, ''), updated_at = NOW()
	          WHERE id = $6`
	res, err := ps.DB.Exec(query, p.Amount, p.PaymentDate, p.Status, p.Method, p.Notes, p.ID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

// Delete removes one payment row.
func (ps *PaymentStore) Delete(id string) (bool, error) {
	res, err := ps.DB.Exec(`DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

// CountForStudent returns how many payments reference a student.
func (ps *PaymentStore) CountForStudent(studentID string) (int, error) {
	var count int
	err := ps.DB.QueryRow(`SELECT COUNT(*) FROM payments WHERE student_id = $1`, studentID).Scan(&count)
	return count, err
}

// List returns payments joined with student display fields, newest first,
// plus the unpaginated total for the filter set.
func (ps *PaymentStore) List(f models.PaymentFilters) ([]*models.PaymentWithStudent, int, error) {
	where := ` WHERE 1=1`
	var args []interface{}

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		p := strconv.Itoa(len(args))
		where += ` AND (s.name ILIKE $` + p + ` OR s.student_code ILIKE $` + p + ` OR s.class ILIKE $` + p + `)`
	}
	if f.Status != "" {
		args = append(args, f.Status)
		where += ` AND p.status = $` + strconv.Itoa(len(args))
	}
	if f.Month != "" {
		args = append(args, f.Month)
		where += ` AND p.payment_month = $` + strconv.Itoa(len(args))
	}

	from := ` FROM payments p JOIN students s ON p.student_id = s.id`

	var total int
	if err := ps.DB.QueryRow(`SELECT COUNT(*)`+from+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT p.id, p.student_id, p.amount, p.payment_date, p.payment_month, p.status, p.method, p.notes, p.created_by, p.created_at, p.updated_at,
	                 s.name, s.student_code, s.class` +
		from + where + ` ORDER BY p.payment_date DESC, s.name ASC`
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.Limit, f.Offset)
	}

	rows, err := ps.DB.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var payments []*models.PaymentWithStudent
	for rows.Next() {
		p := &models.PaymentWithStudent{}
		var notes, createdBy sql.NullString
		if err := rows.Scan(
			&p.ID, &p.StudentID, &p.Amount, &p.PaymentDate, &p.PaymentMonth,
			&p.Status, &p.Method, &notes, &createdBy, &p.CreatedAt, &p.UpdatedAt,
			&p.StudentName, &p.StudentCode, &p.Class,
		); err != nil {
			return nil, 0, err
		}
		p.Notes = notes.String
		p.CreatedBy = createdBy.String
		payments = append(payments, p)
	}
	return payments, total, rows.Err()
}

// Summarize aggregates a filtered selection into per-status counts and the
// total amount of Paid rows, for the payments page summary cards.
func (ps *PaymentStore) Summarize(f models.PaymentFilters) (*models.PaymentSummary, error) {
	where := ` WHERE 1=1`
	var args []interface{}

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		p := strconv.Itoa(len(args))
		where += ` AND (s.name ILIKE $` + p + ` OR s.student_code ILIKE $` + p + ` OR s.class ILIKE $` + p + `)`
	}
	if f.Month != "" {
		args = append(args, f.Month)
		where += ` AND p.payment_month = $` + strconv.Itoa(len(args))
	}

	summary := &models.PaymentSummary{}
	query := `SELECT
	            COUNT(*) FILTER (WHERE p.status = 'Paid'),
	            COUNT(*) FILTER (WHERE p.status = 'Pending'),
	            COUNT(*) FILTER (WHERE p.status = 'Overdue'),
	            COALESCE(SUM(p.amount) FILTER (WHERE p.status = 'Paid'), 0)
	          FROM payments p JOIN students s ON p.student_id = s.id` + where
	err := ps.DB.QueryRow(query, args...).Scan(
		&summary.Paid, &summary.Pending, &summary.Overdue, &summary.PaidTotal,
	)
	if err != nil {
		return nil, err
	}
	return summary, nil
}
