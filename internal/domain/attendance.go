package domain

import "time"

// Attendance status values
const (
	StatusPresent = "PRESENT"
	StatusAbsent  = "ABSENT"
	StatusLate    = "LATE"
	StatusWFH     = "WFH"
)

// AttendanceRecord is one employee-day. Absent days carry no clock times.
type AttendanceRecord struct {
	EmployeeID int       `parquet:"employee_id"`
	Department string    `parquet:"department"`
	Date       time.Time `parquet:"date,date"`
	Status     string    `parquet:"status"`
	CheckIn    *string   `parquet:"check_in,optional"`
	CheckOut   *string   `parquet:"check_out,optional"`
}
