package types

// Stats is the aggregate report shown on the statistics page. The
// Simulated block holds presentational placeholders derived from the
// user total, not measurements.
type Stats struct {
	TotalUsers     int `json:"total_users"`
	AdminCount     int `json:"admin_count"`
	ModeratorCount int `json:"moderator_count"`
	RegularCount   int `json:"regular_count"`

	AdminPercentage     int `json:"admin_percentage"`
	ModeratorPercentage int `json:"moderator_percentage"`
	RegularPercentage   int `json:"regular_percentage"`

	Simulated SimulatedStats `json:"simulated"`

	// LastUpdated is a wall-clock HH:MM string rendered on the page.
	LastUpdated string `json:"last_updated"`
}

// SimulatedStats are synthetic figures with no backing measurement.
type SimulatedStats struct {
	ActiveSessions   int   `json:"active_sessions"`
	ActivePercentage int   `json:"active_percentage"`
	UserGrowth       int   `json:"user_growth"`
	DBSizeMB         int   `json:"db_size_mb"`
	WeeklyUsers      []int `json:"weekly_users"`
}
