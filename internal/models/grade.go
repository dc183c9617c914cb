package models

import "time"

// Subject identifies which strand of the mathematics curriculum a grade
// belongs to. General is used for combined assessments (midterm/final).
type Subject string

const (
	SubjectAlgebra  Subject = "ALGEBRA"
	SubjectGeometry Subject = "GEOMETRY"
	SubjectGeneral  Subject = "GENERAL"
)

// ExamType classifies an assessment and determines its weight.
type ExamType string

const (
	ExamRegular ExamType = "REGULAR"
	ExamMonthly ExamType = "MONTHLY"
	ExamMidterm ExamType = "MIDTERM"
	ExamFinal   ExamType = "FINAL"
)

// CoefficientFor returns the weight attached to an exam type. The mapping is
// fixed by the grading regulation: regular and monthly assessments weigh 1,
// midterms 2, finals 3.
func CoefficientFor(examType ExamType) int {
	switch examType {
	case ExamMidterm:
		return 2
	case ExamFinal:
		return 3
	default:
		return 1
	}
}

// Grade is a single recorded score for a student. Coefficient is always
// derived from ExamType at construction time; it is stored denormalised so
// aggregation never needs the exam-type table.
type Grade struct {
	ID          string    `json:"id"`
	Subject     Subject   `json:"subject"`
	ExamType    ExamType  `json:"exam_type"`
	Coefficient int       `json:"coefficient"`
	Score       float64   `json:"score"`
	Date        time.Time `json:"date"`
	Note        string    `json:"note,omitempty"`
}

// Semester selects which part of the academic year an aggregation covers.
type Semester string

const (
	SemesterFirst  Semester = "HK1"
	SemesterSecond Semester = "HK2"
	SemesterAll    Semester = "ALL"
)

// Includes reports whether a calendar month falls inside the semester. The
// first term spans September through January, wrapping the year boundary;
// the second term spans February through June. July and August belong to
// neither term but are always part of ALL.
func (s Semester) Includes(month time.Month) bool {
	switch s {
	case SemesterFirst:
		return month >= time.September || month <= time.January
	case SemesterSecond:
		return month >= time.February && month <= time.June
	default:
		return true
	}
}

// Valid reports whether the semester selector is one of the known values.
func (s Semester) Valid() bool {
	switch s {
	case SemesterFirst, SemesterSecond, SemesterAll:
		return true
	}
	return false
}
