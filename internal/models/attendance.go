package models

import "time"

// AttendanceRecord mirrors the attendance table.
type AttendanceRecord struct {
	AttendanceID int64     `db:"id"`
	EmployeeID   int64     `db:"employee_id"`
	WorkDate     time.Time `db:"work_date"`
	Present      bool      `db:"present"`
	CreatedAt    time.Time `db:"created_at"`
}
