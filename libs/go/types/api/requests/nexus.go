package requests

// UpdateNexusRegistrationsRequest replaces the caller's registered states
type UpdateNexusRegistrationsRequest struct {
	StateCodes []string `json:"state_codes" binding:"required"`
}
