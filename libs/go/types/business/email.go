package business

// ExposureEscalation is one state whose exposure became more urgent since the last alert
type ExposureEscalation struct {
	StateCode         string
	StateName         string
	PreviousStatus    ExposureStatus
	Status            ExposureStatus
	HighestPercentage float64
}

// ExposureAlertEmailData is the template data for an exposure alert email
type ExposureAlertEmailData struct {
	UserName    string
	Escalations []ExposureEscalation
}
