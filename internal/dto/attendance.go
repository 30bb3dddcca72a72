package dto

import (
	"time"

	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
)

// UpsertAttendanceRequest defines the payload for recording attendance.
// Present is a pointer so "false" survives the required check.
type UpsertAttendanceRequest struct {
	EmployeeID int64  `json:"employeeId" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Present    *bool  `json:"present" binding:"required"`
}

// AttendanceResponse defines the data returned for an attendance record.
type AttendanceResponse struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employeeId"`
	Date       string    `json:"date"`
	Present    bool      `json:"present"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToAttendanceResponse converts a domain.AttendanceRecord to its DTO.
func ToAttendanceResponse(r *domain.AttendanceRecord) AttendanceResponse {
	return AttendanceResponse{
		ID:         r.AttendanceID,
		EmployeeID: r.EmployeeID,
		Date:       r.WorkDate.Format("2006-01-02"),
		Present:    r.Present,
		CreatedAt:  r.CreatedAt,
	}
}

// ToAttendanceResponses converts a slice of domain.AttendanceRecord to DTOs.
func ToAttendanceResponses(records []domain.AttendanceRecord) []AttendanceResponse {
	responses := make([]AttendanceResponse, len(records))
	for i, r := range records {
		responses[i] = ToAttendanceResponse(&r)
	}
	return responses
}
