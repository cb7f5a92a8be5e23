// Package model defines shared data structures for the job search service.
package model

// Job is one normalized listing row in the jobs table, as of the last
// ingestion. Rows are written only by the ingester and treated as immutable
// by the query service.
type Job struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	SalaryMin   *float64 `json:"salary_min"`
	SalaryMax   *float64 `json:"salary_max"`
	URL         string   `json:"url"`
	IsRemote    bool     `json:"is_remote"`
	Skills      string   `json:"skills"`
	PostedDate  string   `json:"posted_date,omitempty"`
	IngestedAt  string   `json:"ingested_at"`
}

// LocationCount is one entry in the per-location statistics ranking.
type LocationCount struct {
	Location string `json:"location"`
	Count    int64  `json:"count"`
}

// CompanyCount is one entry in the per-company statistics ranking.
type CompanyCount struct {
	Company string `json:"company"`
	Count   int64  `json:"count"`
}

// Statistics summarises the jobs table: totals plus the top-N locations
// and companies by listing count. Rankings are ordered by count descending,
// then name ascending on ties.
type Statistics struct {
	TotalJobs    int64           `json:"total_jobs"`
	RemoteJobs   int64           `json:"remote_jobs"`
	TopLocations []LocationCount `json:"top_locations"`
	TopCompanies []CompanyCount  `json:"top_companies"`
}
