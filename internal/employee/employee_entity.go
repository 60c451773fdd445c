package employee

import "time"

// Employee is the authoritative in-memory record for one employee. The id
// is supplied by the caller on create and never changes afterwards.
type Employee struct {
	EmployeeID string
	FullName   string
	BirthDate  time.Time
}
