package predict

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() StudentRecord {
	return StudentRecord{
		Attendance:           85.5,
		StudyHours:           10,
		AssignmentsCompleted: 8,
		QuizScore:            75,
		MidtermScore:         80,
		InternetAccess:       1,
		PastFailures:         0,
	}
}

func TestStudentRecordValidateAccepts(t *testing.T) {
	assert.NoError(t, validRecord().Validate())

	// Zero everywhere is within bounds.
	assert.NoError(t, StudentRecord{}.Validate())
}

func TestStudentRecordValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*StudentRecord)
		field  string
	}{
		{"attendance above 100", func(r *StudentRecord) { r.Attendance = 101 }, "attendance"},
		{"attendance negative", func(r *StudentRecord) { r.Attendance = -1 }, "attendance"},
		{"study hours negative", func(r *StudentRecord) { r.StudyHours = -0.5 }, "study_hours"},
		{"assignments negative", func(r *StudentRecord) { r.AssignmentsCompleted = -1 }, "assignments_completed"},
		{"quiz above 100", func(r *StudentRecord) { r.QuizScore = 100.5 }, "quiz_score"},
		{"midterm negative", func(r *StudentRecord) { r.MidtermScore = -3 }, "midterm_score"},
		{"internet access out of range", func(r *StudentRecord) { r.InternetAccess = 2 }, "internet_access"},
		{"past failures negative", func(r *StudentRecord) { r.PastFailures = -1 }, "past_failures"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			record := validRecord()
			tc.mutate(&record)

			err := record.Validate()
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Fields, tc.field)
		})
	}
}

func TestStudentRecordValidateCollectsAllFields(t *testing.T) {
	record := StudentRecord{Attendance: 200, QuizScore: -5, PastFailures: -2}

	err := record.Validate()
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.ElementsMatch(t, []string{"attendance", "quiz_score", "past_failures"}, validationErr.Fields)
}

func TestStudentRecordFeatureOrder(t *testing.T) {
	record := StudentRecord{
		Attendance:           1,
		StudyHours:           2,
		AssignmentsCompleted: 3,
		QuizScore:            4,
		MidtermScore:         5,
		InternetAccess:       1,
		PastFailures:         7,
	}
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 1, 7}, record.Features())
	assert.Len(t, record.Features(), FeatureCount)
}

func TestStudentRecordJSONNames(t *testing.T) {
	payload := `{
		"attendance": 85.5,
		"study_hours": 10.0,
		"assignments_completed": 8,
		"quiz_score": 75.0,
		"midterm_score": 80.0,
		"internet_access": 1,
		"past_failures": 0
	}`

	var record StudentRecord
	require.NoError(t, json.Unmarshal([]byte(payload), &record))
	assert.Equal(t, validRecord(), record)
}
