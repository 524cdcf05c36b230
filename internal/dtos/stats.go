// File: internal/dtos/stats.go
package dtos

// StatsResponse is the dashboard headline counters, branch-filtered for
// non-elevated requesters.
type StatsResponse struct {
	Members  int64 `json:"members"`
	Groups   int64 `json:"groups"`
	Events   int64 `json:"events"`
	Branches int64 `json:"branches"`
}

// BranchComparison is one row of the per-branch giving comparison.
type BranchComparison struct {
	BranchName       string  `json:"branch_name"`
	TotalContributed float64 `json:"total_contributed"`
	TotalTarget      float64 `json:"total_target"`
}
