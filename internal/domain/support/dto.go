package support

// CreateSupportRequest is the payload for filing a ticket.
type CreateSupportRequest struct {
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=4000"`
}

// UpdateStatusRequest moves a ticket through its lifecycle.
type UpdateStatusRequest struct {
	Status    Status `json:"status" validate:"required,oneof=open in_progress resolved closed"`
	AdminNote string `json:"admin_note" validate:"max=2000"`
}
