package dashboard

// StatsResponse holds one day of attendance statistics. Total is the
// employee headcount, not the record count: employees without a record
// that day still belong in the percentage denominator. Unaccounted counts
// records whose raw status matched none of the five canonical buckets, so
// present+absent+late+leave+pending+unaccounted equals the number of
// records counted.
type StatsResponse struct {
	Date        string `json:"date"`
	Present     int    `json:"present"`
	Absent      int    `json:"absent"`
	Late        int    `json:"late"`
	Leave       int    `json:"leave"`
	Pending     int    `json:"pending"`
	Unaccounted int    `json:"unaccounted"`
	Recorded    int    `json:"recorded"`
	Total       int    `json:"total"`

	PresentPercent int `json:"present_percent"`
	AbsentPercent  int `json:"absent_percent"`
	LatePercent    int `json:"late_percent"`
	LeavePercent   int `json:"leave_percent"`
	PendingPercent int `json:"pending_percent"`
}
