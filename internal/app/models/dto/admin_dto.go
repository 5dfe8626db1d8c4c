package dto

// EventStats aggregates event counts for the dashboard
type EventStats struct {
	Total    int64 `json:"total"`
	Upcoming int64 `json:"upcoming"`
}

// JobStats aggregates job counts by status
type JobStats struct {
	Open   int64 `json:"open"`
	Closed int64 `json:"closed"`
}

// CompanyCount is one bucket of the alumni-by-company aggregation
type CompanyCount struct {
	Company string `json:"company" bson:"_id"`
	Count   int64  `json:"count" bson:"count"`
}

// DashboardStats is the admin analytics payload
type DashboardStats struct {
	Students        int64           `json:"students"`
	Alumni          int64           `json:"alumni"`
	PendingAlumni   int64           `json:"pendingAlumni"`
	Events          EventStats      `json:"events"`
	Jobs            JobStats        `json:"jobs"`
	AlumniByCompany []*CompanyCount `json:"alumniByCompany"`
}

// DashboardStatsResponse wraps the dashboard payload
type DashboardStatsResponse struct {
	Success bool            `json:"success"`
	Stats   *DashboardStats `json:"stats"`
}
