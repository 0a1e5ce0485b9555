package response_models

type ChildSummary struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Age    int      `json:"age"`
	Points int      `json:"points"`
	Level  int      `json:"level"`
	Badges []string `json:"badges"`
}

type DashboardResponse struct {
	Children          []ChildSummary `json:"children"`
	DiaryEntriesToday int64          `json:"diary_entries_today"`
	ScansUsedToday    int            `json:"scans_used_today"`
	CoachUsedToday    int            `json:"coach_messages_used_today"`
	IsPremium         bool           `json:"is_premium"`
}
