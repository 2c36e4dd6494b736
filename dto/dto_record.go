package dto

// RecordRequest is the create/update payload. Total and remaining are
// deliberately absent: they are derived server-side and a client-supplied
// value would be ignored anyway.
type RecordRequest struct {
	PrPoNo        string  `json:"pr_po_no" validate:"required"`
	StaffID       string  `json:"staff_id" validate:"required"`
	IndenterName  string  `json:"indenter_name" validate:"required"`
	ItemMaterial  string  `json:"item_material" validate:"required"`
	ProjectHead   string  `json:"project_head" validate:"required"`
	Description   string  `json:"description" validate:"required"`
	ApprovalRs    float64 `json:"approval_rs" validate:"gte=0"`
	UtilizationRs float64 `json:"utilization_rs" validate:"gte=0"`
	Purpose       string  `json:"purpose"`
	Document1Link string  `json:"document1_link"`
	Document2Link string  `json:"document2_link"`
}
