package dto

// WorkCreateRequest creates a work item on behalf of an associate. Times
// are RFC3339 strings, parsed and checked server-side.
type WorkCreateRequest struct {
	StaffID       string `json:"staff_id" validate:"required"` // the associate
	ProjectName   string `json:"project_name" validate:"required"`
	Objective     string `json:"objective" validate:"required"`
	Task          string `json:"task" validate:"required"`
	Description   string `json:"description"`
	AllocatedTime string `json:"allocated_time" validate:"required"`
	DeadlineTime  string `json:"deadline_time" validate:"required"`
}

type WorkUpdateRequest struct {
	ProjectName   string `json:"project_name"`
	Objective     string `json:"objective"`
	Task          string `json:"task"`
	Description   string `json:"description"`
	AllocatedTime string `json:"allocated_time"`
	DeadlineTime  string `json:"deadline_time"`
}

type WorkProgressRequest struct {
	ProgressDescription string `json:"progress_description" validate:"required"`
}

type WorkDelayRequest struct {
	ReasonForDelay string `json:"reason_for_delay" validate:"required"`
}
