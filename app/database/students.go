package database

import (
	"database/sql"
	"fmt"
	"strconv"

	"spp-tuition/app/models"
)

// StudentStore runs student queries against Postgres.
type StudentStore struct {
	DB *sql.DB
}

func NewStudentStore(db *sql.DB) *StudentStore {
	return &StudentStore{DB: db}
}

const studentColumns = `id, student_code, name, class, phone, email, parent_name, parent_phone, address, monthly_fee, status, created_at, updated_at`

func scanStudent(row interface{ Scan(...interface{}) error }) (*models.Student, error) {
	s := &models.Student{}
	var phone, email, parentName, parentPhone, address sql.NullString
	err := row.Scan(
		&s.ID, &s.StudentCode, &s.Name, &s.Class,
		&phone, &email, &parentName, &parentPhone, &address,
		&s.MonthlyFee, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Phone = phone.String
	s.Email = email.String
	s.ParentName = parentName.String
	s.ParentPhone = parentPhone.String
	s.Address = address.String
	return s, nil
}

// Create inserts a new student and fills in the generated id and timestamps.
func (st *StudentStore) Create(s *models.Student) error {
	query := `INSERT INTO students (student_code, name, class, phone, email, parent_name, parent_phone, address, monthly_fee, status)
	          VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), $9, $10)
	          RETURNING id, created_at, updated_at`
	err := st.DB.QueryRow(query,
		s.StudentCode, s.Name, s.Class, s.Phone, s.Email,
		s.ParentName, s.ParentPhone, s.Address, s.MonthlyFee, s.Status,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if isUniqueViolation(err, "students_student_code_key") {
		return ErrDuplicateStudentCode
	}
	return err
}

// GetByID returns one student or ErrNotFound.
func (st *StudentStore) GetByID(id string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`
	s, err := scanStudent(st.DB.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return s, err
}

// GetByCode returns one student looked up by the human-readable code.
func (st *StudentStore) GetByCode(code string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE student_code = $1`
	s, err := scanStudent(st.DB.QueryRow(query, code))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return s, err
}

// Update rewrites all editable fields of a student.
func (st *StudentStore) Update(s *models.Student) (bool, error) {
	query := `UPDATE students
	          SET student_code = $1, name = $2, class = $3, phone = NULLIF($4, ''), email = NULLIF($5, ''),
	              parent_name = NULLIF($6, ''), parent_phone = NULLIF($7, ''), address = NULLIF($8, ''),
	              monthly_fee = $9, status = $10, updated_at = NOW()
	          WHERE id = $11`
	res, err := st.DB.Exec(query,
		s.StudentCode, s.Name, s.Class, s.Phone, s.Email,
		s.ParentName, s.ParentPhone, s.Address, s.MonthlyFee, s.Status, s.ID,
	)
	if isUniqueViolation(err, "students_student_code_key") {
		return false, ErrDuplicateStudentCode
	}
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

// DeleteIfNoPayments removes a student only when no payment references them.
// The count and the delete run in one transaction so a payment inserted
// concurrently cannot slip in between the two.
func (st *StudentStore) DeleteIfNoPayments(id string) (int, error) {
	tx, err := st.DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var count int
	err = tx.QueryRow(`SELECT COUNT(*) FROM payments WHERE student_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return count, nil
	}

	res, err := tx.Exec(`DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, ErrNotFound
	}
	return 0, tx.Commit()
}

// List returns students matching the filters plus the unpaginated total.
func (st *StudentStore) List(f models.StudentFilters) ([]*models.Student, int, error) {
	where := " WHERE 1=1"
	var args []interface{}

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		p := strconv.Itoa(len(args))
		where += ` AND (name ILIKE $` + p + ` OR student_code ILIKE $` + p + ` OR class ILIKE $` + p + ` OR parent_name ILIKE $` + p + `)`
	}
	if f.Status != "" {
		args = append(args, f.Status)
		where += ` AND status = $` + strconv.Itoa(len(args))
	}

	var total int
	if err := st.DB.QueryRow(`SELECT COUNT(*) FROM students`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + studentColumns + ` FROM students` + where + ` ORDER BY name ASC`
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.Limit, f.Offset)
	}

	rows, err := st.DB.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, 0, err
		}
		students = append(students, s)
	}
	return students, total, rows.Err()
}

// NextCode returns the next free student code for a year, formatted as the
// year followed by a three-digit sequence.
func (st *StudentStore) NextCode(year int) (string, error) {
	prefix := strconv.Itoa(year)
	var last sql.NullString
	query := `SELECT MAX(student_code) FROM students WHERE student_code LIKE $1 || '%' AND LENGTH(student_code) = 7`
	if err := st.DB.QueryRow(query, prefix).Scan(&last); err != nil {
		return "", err
	}

	seq := 1
	if last.Valid && len(last.String) == 7 {
		if n, err := strconv.Atoi(last.String[4:]); err == nil {
			seq = n + 1
		}
	}
	return fmt.Sprintf("%s%03d", prefix, seq), nil
}
