package domain

import "time"

// AttendanceRecord marks whether an employee was present on a given day.
// There is at most one record per (employee, day) pair.
type AttendanceRecord struct {
	AttendanceID int64
	EmployeeID   int64
	WorkDate     time.Time // day granularity
	Present      bool
	CreatedAt    time.Time
}
