package domain

type DashboardStats struct {
	TotalProperties     int `json:"total_properties"`
	AvailableProperties int `json:"available_properties"`
	TotalEnquiries      int `json:"total_enquiries"`
	PendingEnquiries    int `json:"pending_enquiries"`
}

// MonthlyEnquiryCount feeds the dashboard chart; Month is "2006-01".
type MonthlyEnquiryCount struct {
	Month string `db:"month" json:"month"`
	Count int    `db:"count" json:"count"`
}
