package dto

type StaffCreateRequest struct {
	StaffID  string `json:"staff_id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// StaffUpdateRequest patches name and/or password; empty fields are left
// unchanged.
type StaffUpdateRequest struct {
	Name     string `json:"name"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

type AssociateCreateRequest struct {
	StaffID       string   `json:"staff_id" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	Password      string   `json:"password" validate:"required,min=6"`
	AssignedStaff []string `json:"assigned_staff" validate:"required,min=1"`
}

type AssociateUpdateRequest struct {
	Name          string   `json:"name"`
	Password      string   `json:"password" validate:"omitempty,min=6"`
	AssignedStaff []string `json:"assigned_staff"`
}
