package services

import (
	"testing"

	"spp-tuition/app/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateStudent(t *testing.T) {
	studentSvc, _, _, audit := newTestServices()

	student, err := studentSvc.CreateStudent(testActor, StudentInput{
		StudentCode: "2024001",
		Name:        "Budi Santoso",
		Class:       "X-1",
		Phone:       "081234567890",
		Email:       "budi@example.com",
		MonthlyFee:  decimal.NewFromInt(500000),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, student.ID)
	assert.Equal(t, models.StudentActive, student.Status, "status defaults to Active")

	require.NotEmpty(t, audit.events)
	assert.Equal(t, "add_student", audit.events[len(audit.events)-1].Action)
}

func TestCreateStudentDuplicateCode(t *testing.T) {
	studentSvc, _, _, _ := newTestServices()
	mustCreateStudent(t, studentSvc, "2024001")

	_, err := studentSvc.CreateStudent(testActor, StudentInput{
		StudentCode: "2024001",
		Name:        "Someone Else",
		Class:       "X-2",
		MonthlyFee:  decimal.NewFromInt(450000),
	})
	assert.ErrorIs(t, err, ErrDuplicateStudentCode)
}

func TestCreateStudentCollectsAllViolations(t *testing.T) {
	studentSvc, _, _, _ := newTestServices()

	_, err := studentSvc.CreateStudent(testActor, StudentInput{
		Phone:      "12345",
		Email:      "not-an-email",
		MonthlyFee: decimal.NewFromInt(-100),
		Status:     "Expelled",
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	violated := make(map[string]bool)
	for _, f := range verr.Fields {
		violated[f.Field] = true
	}
	for _, field := range []string{"student_code", "name", "class", "phone", "email", "monthly_fee", "status"} {
		assert.True(t, violated[field], "expected a violation on %s", field)
	}
}

func TestUpdateStudent(t *testing.T) {
	studentSvc, _, _, _ := newTestServices()
	student := mustCreateStudent(t, studentSvc, "2024001")

	updated, err := studentSvc.UpdateStudent(testActor, student.ID, StudentInput{
		StudentCode: "2024001",
		Name:        "Renamed Student",
		Class:       "XI-1",
		MonthlyFee:  decimal.NewFromInt(550000),
		Status:      "Inactive",
	})
	require.NoError(t, err)
	assert.True(t, updated)

	got, err := studentSvc.GetStudent(student.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Student", got.Name)
	assert.Equal(t, models.StudentInactive, got.Status)
}

func TestUpdateStudentDuplicateCode(t *testing.T) {
	studentSvc, _, _, _ := newTestServices()
	mustCreateStudent(t, studentSvc, "2024001")
	other := mustCreateStudent(t, studentSvc, "2024002")

	_, err := studentSvc.UpdateStudent(testActor, other.ID, StudentInput{
		StudentCode: "2024001",
		Name:        other.Name,
		Class:       other.Class,
		MonthlyFee:  other.MonthlyFee,
	})
	assert.ErrorIs(t, err, ErrDuplicateStudentCode)
}

func TestUpdateStudentNotFound(t *testing.T) {
	studentSvc, _, _, _ := newTestServices()

	_, err := studentSvc.UpdateStudent(testActor, "missing", StudentInput{
		StudentCode: "2024001",
		Name:        "Nobody",
		Class:       "X-1",
		MonthlyFee:  decimal.NewFromInt(500000),
	})
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestDeleteStudentWithoutPayments(t *testing.T) {
	studentSvc, _, _, _ := newTestServices()
	student := mustCreateStudent(t, studentSvc, "2024001")

	require.NoError(t, studentSvc.DeleteStudent(testActor, student.ID))

	_, err := studentSvc.GetStudent(student.ID)
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestDeleteStudentBlockedByPayments(t *testing.T) {
	studentSvc, paymentSvc, _, _ := newTestServices()
	student := mustCreateStudent(t, studentSvc, "2024001")

	payment, err := paymentSvc.CreatePayment(testActor, paymentInput(student.ID))
	require.NoError(t, err)

	err = studentSvc.DeleteStudent(testActor, student.ID)
	assert.ErrorIs(t, err, ErrHasDependentPayments)

	// Both the student and the payment survive the refused delete.
	_, err = studentSvc.GetStudent(student.ID)
	assert.NoError(t, err)
	_, err = paymentSvc.GetPayment(payment.ID)
	assert.NoError(t, err)
}

func TestDeleteStudentNotFound(t *testing.T) {
	studentSvc, _, _, _ := newTestServices()
	err := studentSvc.DeleteStudent(testActor, "missing")
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestGenerateStudentCode(t *testing.T) {
	studentSvc, _, _, _ := newTestServices()

	first, err := studentSvc.GenerateStudentCode()
	require.NoError(t, err)
	assert.Len(t, first, 7)

	_, err = studentSvc.CreateStudent(testActor, StudentInput{
		StudentCode: first,
		Name:        "First Student",
		Class:       "X-1",
		MonthlyFee:  decimal.NewFromInt(500000),
	})
	require.NoError(t, err)

	second, err := studentSvc.GenerateStudentCode()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
