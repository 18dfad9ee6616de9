// internal/transport/dto/stats_dto.go
package dto

// JobsByStatus breaks down job counts by lifecycle status.
type JobsByStatus struct {
	Active   int `json:"active"`
	Archived int `json:"archived"`
}

// StatsResponse aggregates pipeline-wide counts for the dashboard.
type StatsResponse struct {
	TotalJobs           int            `json:"totalJobs"`
	TotalCandidates     int            `json:"totalCandidates"`
	TotalApplications   int            `json:"totalApplications"`
	JobsByStatus        JobsByStatus   `json:"jobsByStatus"`
	ApplicationsByStage map[string]int `json:"applicationsByStage"`
}
