package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"spp-tuition/app/database"
	"spp-tuition/app/models"
	"spp-tuition/app/validation"

	"github.com/shopspring/decimal"
)

// StudentService owns the student registry rules: unique human-readable
// codes, required enrollment fields, and the guard that a student with
// recorded payments cannot be deleted.
type StudentService struct {
	students StudentStore
	audit    ActivityLogger
}

func NewStudentService(students StudentStore, audit ActivityLogger) *StudentService {
	return &StudentService{students: students, audit: audit}
}

// StudentInput is the typed command for registering or updating a student.
type StudentInput struct {
	StudentCode string          `json:"student_code" validate:"required"`
	Name        string          `json:"name" validate:"required"`
	Class       string          `json:"class" validate:"required"`
	Phone       string          `json:"phone" validate:"omitempty,phone_id"`
	Email       string          `json:"email" validate:"omitempty,email"`
	ParentName  string          `json:"parent_name"`
	ParentPhone string          `json:"parent_phone" validate:"omitempty,phone_id"`
	Address     string          `json:"address"`
	MonthlyFee  decimal.Decimal `json:"monthly_fee"`
	Status      string          `json:"status"`
}

func validateStudentInput(in StudentInput) []validation.FieldError {
	fields := validation.Struct(in)
	if !in.MonthlyFee.IsPositive() {
		fields = append(fields, validation.FieldError{Field: "monthly_fee", Message: "valid monthly fee is required"})
	}
	if in.Status != "" && !models.StudentStatus(in.Status).Valid() {
		fields = append(fields, validation.FieldError{Field: "status", Message: "status must be Active or Inactive"})
	}
	return fields
}

func studentFromInput(in StudentInput) *models.Student {
	status := models.StudentStatus(in.Status)
	if in.Status == "" {
		status = models.StudentActive
	}
	return &models.Student{
		StudentCode: in.StudentCode,
		Name:        in.Name,
		Class:       in.Class,
		Phone:       in.Phone,
		Email:       in.Email,
		ParentName:  in.ParentName,
		ParentPhone: in.ParentPhone,
		Address:     in.Address,
		MonthlyFee:  in.MonthlyFee,
		Status:      status,
	}
}

// CreateStudent registers a new student.
func (ss *StudentService) CreateStudent(actor Actor, in StudentInput) (*models.Student, error) {
	if fields := validateStudentInput(in); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	// Friendly-path duplicate check; the unique constraint still backs it
	// up against concurrent creates.
	if _, err := ss.students.GetByCode(in.StudentCode); err == nil {
		return nil, ErrDuplicateStudentCode
	} else if !errors.Is(err, database.ErrNotFound) {
		log.Printf("Create student: duplicate check failed: %v", err)
		return nil, &StoreError{Op: "create student", Err: err}
	}

	student := studentFromInput(in)
	if err := ss.students.Create(student); err != nil {
		if errors.Is(err, database.ErrDuplicateStudentCode) {
			return nil, ErrDuplicateStudentCode
		}
		log.Printf("Create student: insert failed: %v", err)
		return nil, &StoreError{Op: "create student", Err: err}
	}

	ss.audit.Log(actor, "add_student", fmt.Sprintf("Added student: %s (%s)", student.Name, student.StudentCode))
	return student, nil
}

// UpdateStudent rewrites a student's fields, keeping the code unique.
func (ss *StudentService) UpdateStudent(actor Actor, studentID string, in StudentInput) (bool, error) {
	if fields := validateStudentInput(in); len(fields) > 0 {
		return false, &ValidationError{Fields: fields}
	}

	existing, err := ss.students.GetByID(studentID)
	if errors.Is(err, database.ErrNotFound) {
		return false, ErrStudentNotFound
	}
	if err != nil {
		log.Printf("Update student: lookup failed: %v", err)
		return false, &StoreError{Op: "update student", Err: err}
	}

	student := studentFromInput(in)
	student.ID = existing.ID
	if in.Status == "" {
		student.Status = existing.Status
	}

	updated, err := ss.students.Update(student)
	if err != nil {
		if errors.Is(err, database.ErrDuplicateStudentCode) {
			return false, ErrDuplicateStudentCode
		}
		log.Printf("Update student: update failed: %v", err)
		return false, &StoreError{Op: "update student", Err: err}
	}

	if updated {
		ss.audit.Log(actor, "update_student", fmt.Sprintf("Updated student: %s (%s)", student.Name, student.StudentCode))
	}
	return updated, nil
}

// DeleteStudent removes a student, refusing while payments reference them.
// The dependent-payment count and the delete run in a single transaction in
// the store so a concurrent payment insert cannot race past the check.
func (ss *StudentService) DeleteStudent(actor Actor, studentID string) error {
	student, err := ss.students.GetByID(studentID)
	if errors.Is(err, database.ErrNotFound) {
		return ErrStudentNotFound
	}
	if err != nil {
		log.Printf("Delete student: lookup failed: %v", err)
		return &StoreError{Op: "delete student", Err: err}
	}

	count, err := ss.students.DeleteIfNoPayments(studentID)
	if errors.Is(err, database.ErrNotFound) {
		return ErrStudentNotFound
	}
	if err != nil {
		log.Printf("Delete student: delete failed: %v", err)
		return &StoreError{Op: "delete student", Err: err}
	}
	if count > 0 {
		return ErrHasDependentPayments
	}

	ss.audit.Log(actor, "delete_student", fmt.Sprintf("Deleted student: %s (%s)", student.Name, student.StudentCode))
	return nil
}

// GetStudent returns one student by id.
func (ss *StudentService) GetStudent(studentID string) (*models.Student, error) {
	student, err := ss.students.GetByID(studentID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrStudentNotFound
	}
	if err != nil {
		log.Printf("Get student: lookup failed: %v", err)
		return nil, &StoreError{Op: "get student", Err: err}
	}
	return student, nil
}

// ListStudents returns students for the given filters plus the unpaginated
// total.
func (ss *StudentService) ListStudents(f models.StudentFilters) ([]*models.Student, int, error) {
	students, total, err := ss.students.List(f)
	if err != nil {
		log.Printf("List students: query failed: %v", err)
		return nil, 0, &StoreError{Op: "list students", Err: err}
	}
	return students, total, nil
}

// GenerateStudentCode proposes the next free code for the current year:
// the year followed by a three-digit sequence.
func (ss *StudentService) GenerateStudentCode() (string, error) {
	code, err := ss.students.NextCode(time.Now().Year())
	if err != nil {
		log.Printf("Generate student code: query failed: %v", err)
		return "", &StoreError{Op: "generate student code", Err: err}
	}
	return code, nil
}
