package attendancerequest

// Dates are YYYY-MM-DD, clock times RFC 3339.
type CreateAttendanceRequest struct {
	EmployeeID   string `json:"employee_id"`
	FromDate     string `json:"from_date"`
	ToDate       string `json:"to_date"`
	ClockIn      string `json:"clock_in"`
	ClockOut     string `json:"clock_out"`
	BreakMinutes *int   `json:"break_minutes"`
	Location     string `json:"location"`
	ReasonType   string `json:"reason_type"`
	Description  string `json:"description"`
}

type UpdateAttendanceRequest struct {
	FromDate     string `json:"from_date"`
	ToDate       string `json:"to_date"`
	ClockIn      string `json:"clock_in"`
	ClockOut     string `json:"clock_out"`
	BreakMinutes *int   `json:"break_minutes"`
	Location     string `json:"location"`
	ReasonType   string `json:"reason_type"`
	Description  string `json:"description"`
}

type DecisionRequest struct {
	Status string  `json:"status"`
	Note   *string `json:"note"`
}

type AttendanceRequestResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	FromDate     string  `json:"from_date"`
	ToDate       string  `json:"to_date"`
	ClockIn      string  `json:"clock_in"`
	ClockOut     string  `json:"clock_out"`
	BreakMinutes int     `json:"break_minutes"`
	TotalHours   float64 `json:"total_hours"`
	Location     string  `json:"location"`
	ReasonType   string  `json:"reason_type"`
	Description  string  `json:"description,omitempty"`
	Status       string  `json:"status"`
	CreatedBy    string  `json:"created_by"`
	ApprovedBy   *string `json:"approved_by,omitempty"`
	DecidedAt    *string `json:"decided_at,omitempty"`
	DecisionNote *string `json:"decision_note,omitempty"`
}
