package attendance

type AttendanceResponse struct {
	ID                string   `json:"id"`
	EmployeeID        string   `json:"employee_id"`
	EmployeeName      string   `json:"employee_name,omitempty"`
	AttendanceDate    string   `json:"attendance_date"`
	AttendanceEndDate string   `json:"attendance_end_date"`
	ClockIn           string   `json:"clock_in"`
	ClockOut          *string  `json:"clock_out,omitempty"`
	BreakMinutes      int      `json:"break_minutes"`
	WorkingHours      float64  `json:"working_hours"`
	Latitude          *float64 `json:"latitude,omitempty"`
	Longitude         *float64 `json:"longitude,omitempty"`
	Location          *string  `json:"location,omitempty"`
	Status            string   `json:"status"`
	Source            string   `json:"source"`
	ExternalRef       *string  `json:"external_ref,omitempty"`
	Notes             *string  `json:"notes,omitempty"`
}

type ListFilter struct {
	From string `form:"from"`
	To   string `form:"to"`
}
