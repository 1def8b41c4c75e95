package response

type DashboardStatsResponse struct {
	TotalFarmers    int64   `json:"total_farmers"`
	TotalOwners     int64   `json:"total_owners"`
	TotalWorkers    int64   `json:"total_workers"`
	TotalMachinery  int64   `json:"total_machinery"`
	TotalBookings   int64   `json:"total_bookings"`
	TotalCollection float64 `json:"total_collection"`
}
