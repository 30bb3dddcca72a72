package mapping

import (
	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	"github.com/tbensalah/gestion_chantier_app/internal/models"
)

// ToDomainEmployee converts a model Employee to a domain Employee
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID: m.EmployeeID,
		LastName:   m.LastName,
		FirstName:  m.FirstName,
		Phone:      derefString(m.Phone),
		Type:       domain.EmployeeType(m.Type),
		DailyRate:  m.DailyRate,
		CreatedAt:  m.CreatedAt,
	}
}

// ToDomainEmployeeSlice converts a slice of model Employees to domain Employees
func ToDomainEmployeeSlice(ms []models.Employee) []domain.Employee {
	ds := make([]domain.Employee, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEmployee(m)
	}
	return ds
}

// ToDomainAttendance converts a model AttendanceRecord to a domain AttendanceRecord
func ToDomainAttendance(m models.AttendanceRecord) domain.AttendanceRecord {
	return domain.AttendanceRecord{
		AttendanceID: m.AttendanceID,
		EmployeeID:   m.EmployeeID,
		WorkDate:     m.WorkDate,
		Present:      m.Present,
		CreatedAt:    m.CreatedAt,
	}
}

// ToDomainAttendanceSlice converts a slice of model AttendanceRecords to domain records
func ToDomainAttendanceSlice(ms []models.AttendanceRecord) []domain.AttendanceRecord {
	ds := make([]domain.AttendanceRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAttendance(m)
	}
	return ds
}

// ToDomainMeterWork converts a model MeterWorkRecord to a domain MeterWorkRecord
func ToDomainMeterWork(m models.MeterWorkRecord) domain.MeterWorkRecord {
	return domain.MeterWorkRecord{
		MeterWorkID:   m.MeterWorkID,
		EmployeeID:    m.EmployeeID,
		WorkDate:      m.WorkDate,
		Meters:        m.Meters,
		PricePerMeter: m.PricePerMeter,
		Total:         m.Total,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainMeterWorkSlice converts a slice of model MeterWorkRecords to domain records
func ToDomainMeterWorkSlice(ms []models.MeterWorkRecord) []domain.MeterWorkRecord {
	ds := make([]domain.MeterWorkRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMeterWork(m)
	}
	return ds
}
