package dto

type AdminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type StaffLoginRequest struct {
	StaffID  string `json:"staff_id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token   string `json:"token"`
	StaffID string `json:"staff_id,omitempty"`
	Name    string `json:"name,omitempty"`
	Role    string `json:"role,omitempty"`
}
