package leave

type CreateLeaveRequest struct {
	EmployeeID  string `json:"employee_id"`
	LeaveTypeID string `json:"leave_type_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Reason      string `json:"reason"`
}

type UpdateLeaveRequest struct {
	LeaveTypeID string `json:"leave_type_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Reason      string `json:"reason"`
}

type DecisionRequest struct {
	Status string  `json:"status"`
	Note   *string `json:"note"`
}

type LeaveResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name,omitempty"`
	LeaveTypeID   string  `json:"leave_type_id"`
	LeaveTypeName string  `json:"leave_type_name,omitempty"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	TotalDays     int     `json:"total_days"`
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`
	CreatedBy     string  `json:"created_by"`
	ApprovedBy    *string `json:"approved_by,omitempty"`
	DecidedAt     *string `json:"decided_at,omitempty"`
	DecisionNote  *string `json:"decision_note,omitempty"`
}

type BalanceQuery struct {
	EmployeeID  string `form:"employee_id" json:"employee_id" binding:"required,uuid"`
	LeaveTypeID string `form:"leave_type_id" json:"leave_type_id" binding:"required,uuid"`
	Year        int    `form:"year" json:"year" binding:"omitempty,min=1970,max=9999"`
}

type BalanceResponse struct {
	EmployeeID  string `json:"employee_id"`
	LeaveTypeID string `json:"leave_type_id"`
	Year        int    `json:"year"`
	Sequence    int    `json:"sequence"`
	Total       int    `json:"total"`
	Used        int    `json:"used"`
	Remaining   int    `json:"remaining"`
	Fresh       bool   `json:"fresh"`
}

type BalanceEntryResponse struct {
	ID              string  `json:"id"`
	Sequence        int     `json:"sequence"`
	Total           int     `json:"total"`
	Used            int     `json:"used"`
	Remaining       int     `json:"remaining"`
	SourceRequestID *string `json:"source_request_id,omitempty"`
	CreatedAt       string  `json:"created_at"`
}
