package dto

// DashboardStats is the summary block on the dashboard landing page.
// FeeCollection sums paidAmount across paid challans; FeeDefaulters counts
// unpaid challans. Recomputed on every request, no cache.
type DashboardStats struct {
	TotalStudents int64   `json:"totalStudents"`
	TotalFaculty  int64   `json:"totalFaculty"`
	FeeCollection float64 `json:"feeCollection"`
	FeeDefaulters int64   `json:"feeDefaulters"`
}
