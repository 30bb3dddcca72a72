package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
)

// CreateEmployeeRequest defines the payload for creating an employee.
// DailyRate is only meaningful for daily employees.
type CreateEmployeeRequest struct {
	LastName  string           `json:"lastName" binding:"required"`
	FirstName string           `json:"firstName" binding:"required"`
	Phone     string           `json:"phone"`
	Type      string           `json:"type" binding:"required,oneof=daily meter"`
	DailyRate *decimal.Decimal `json:"dailyRate"`
}

// EmployeeResponse defines the data returned for an employee.
type EmployeeResponse struct {
	ID        int64            `json:"id"`
	LastName  string           `json:"lastName"`
	FirstName string           `json:"firstName"`
	Phone     string           `json:"phone"`
	Type      string           `json:"type"`
	DailyRate *decimal.Decimal `json:"dailyRate,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}

// EmployeeBalanceResponse carries the derived pay figures for an employee.
type EmployeeBalanceResponse struct {
	EmployeeID int64           `json:"employeeId"`
	Earned     decimal.Decimal `json:"earned"`
	Paid       decimal.Decimal `json:"paid"`
	Balance    decimal.Decimal `json:"balance"`
}

// EmployeeHistoryResponse returns an employee together with their pay
// history: attendance for daily employees, meter work for meter employees.
type EmployeeHistoryResponse struct {
	Employee  EmployeeResponse    `json:"employee"`
	History   []AttendanceResponse `json:"history,omitempty"`
	MeterWork []MeterWorkResponse  `json:"meterWork,omitempty"`
}

// ToEmployeeResponse converts a domain.Employee to EmployeeResponse DTO.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.EmployeeID,
		LastName:  e.LastName,
		FirstName: e.FirstName,
		Phone:     e.Phone,
		Type:      string(e.Type),
		DailyRate: e.DailyRate,
		CreatedAt: e.CreatedAt,
	}
}

// ToEmployeeResponses converts a slice of domain.Employee to []EmployeeResponse.
func ToEmployeeResponses(employees []domain.Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		responses[i] = ToEmployeeResponse(&e)
	}
	return responses
}

// ToEmployeeBalanceResponse converts a domain.PayrollSummary to its DTO.
func ToEmployeeBalanceResponse(s domain.PayrollSummary) EmployeeBalanceResponse {
	return EmployeeBalanceResponse{
		EmployeeID: s.EmployeeID,
		Earned:     s.Earned,
		Paid:       s.Paid,
		Balance:    s.Balance,
	}
}
