// Package predict implements the student risk scoring pipeline: input
// validation, feature assembly, model inference and explanation building.
package predict

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FeatureCount is the width of the model input vector.
const FeatureCount = 7

// StudentRecord is the prediction input. Bounds mirror the constraints the
// models were trained under.
type StudentRecord struct {
	Attendance           float64 `json:"attendance" validate:"gte=0,lte=100"`
	StudyHours           float64 `json:"study_hours" validate:"gte=0"`
	AssignmentsCompleted int     `json:"assignments_completed" validate:"gte=0"`
	QuizScore            float64 `json:"quiz_score" validate:"gte=0,lte=100"`
	MidtermScore         float64 `json:"midterm_score" validate:"gte=0,lte=100"`
	InternetAccess       int     `json:"internet_access" validate:"gte=0,lte=1"`
	PastFailures         int     `json:"past_failures" validate:"gte=0"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report violations under the wire names clients actually sent.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationError lists the fields that failed their range checks.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid value for " + strings.Join(e.Fields, ", ")
}

// Validate checks every range constraint independently.
func (r StudentRecord) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validate student record: %w", err)
	}
	fields := make([]string, 0, len(violations))
	for _, violation := range violations {
		fields = append(fields, violation.Field())
	}
	return &ValidationError{Fields: fields}
}

// Features returns the model input vector in the order the models were
// trained with. The order is fixed and must not change.
func (r StudentRecord) Features() []float64 {
	return []float64{
		r.Attendance,
		r.StudyHours,
		float64(r.AssignmentsCompleted),
		r.QuizScore,
		r.MidtermScore,
		float64(r.InternetAccess),
		float64(r.PastFailures),
	}
}
