package business

// AlertRunResult summarises one exposure alert run
type AlertRunResult struct {
	UsersProcessed int `json:"users_processed"`
	UsersFailed    int `json:"users_failed"`
	AlertsSent     int `json:"alerts_sent"`
}
