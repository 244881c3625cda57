package models

// ServiceCount pairs a service name with how many bookings it received.
type ServiceCount struct {
	ServiceName string `json:"serviceName"`
	Count       int    `json:"count"`
}

// AnalyticsSummary is the admin dashboard aggregate computed over all bookings.
type AnalyticsSummary struct {
	TotalBookings   int            `json:"totalBookings"`
	ByStatus        map[string]int `json:"byStatus"`
	Revenue         float64        `json:"revenue"`         // confirmed + completed
	UpcomingWeek    int            `json:"upcomingWeek"`    // confirmed within the next 7 days
	PopularServices []ServiceCount `json:"popularServices"` // sorted by count desc
}
