package predict

import (
	"fmt"
	"strings"
)

// Explanations are templated from threshold rules on the raw inputs, not
// from model internals. Thresholds match the ones used when the models
// were trained.
const (
	lowMidtermThreshold    = 70.0
	lowQuizThreshold       = 70.0
	lowStudyHoursThreshold = 10.0
	lowAttendanceThreshold = 75.0
)

func riskPhrase(label int) string {
	if label == 1 {
		return "at risk"
	}
	return "not at risk"
}

// explainLogistic names the weak academic indicators present in the input.
func explainLogistic(record StudentRecord, label int) string {
	var factors []string
	if record.MidtermScore < lowMidtermThreshold {
		factors = append(factors, "low midterm score")
	}
	if record.QuizScore < lowQuizThreshold {
		factors = append(factors, "low quiz score")
	}
	if record.StudyHours < lowStudyHoursThreshold {
		factors = append(factors, "low study hours")
	}
	if record.Attendance < lowAttendanceThreshold {
		factors = append(factors, "low attendance")
	}

	if len(factors) == 0 {
		return fmt.Sprintf("The model predicted the student is %s based on overall academic performance indicators.", riskPhrase(label))
	}
	return fmt.Sprintf("The model predicted the student is %s because of %s.", riskPhrase(label), joinFactors(factors))
}

// explainTree names the categorical signals the tree splits on.
func explainTree(record StudentRecord, label int) string {
	factors := make([]string, 0, 2)
	if record.PastFailures > 0 {
		factors = append(factors, fmt.Sprintf("%d past failure(s)", record.PastFailures))
	} else {
		factors = append(factors, "no past failures")
	}
	if record.InternetAccess == 1 {
		factors = append(factors, "internet access available")
	} else {
		factors = append(factors, "no internet access")
	}
	return fmt.Sprintf("The model predicted the student is %s because of %s.", riskPhrase(label), strings.Join(factors, ", "))
}

// joinFactors renders "a", "a, and b", "a, b, and c".
func joinFactors(factors []string) string {
	if len(factors) == 1 {
		return factors[0]
	}
	return strings.Join(factors[:len(factors)-1], ", ") + ", and " + factors[len(factors)-1]
}
