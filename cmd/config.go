package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// ExpirationJobSchedule is the cron expression for the sweep that persists
	// lapsed confirmation deadlines.
	ExpirationJobSchedule string

	// Currency is the platform currency code applied to package prices.
	Currency string

	// DeadlineCriticalHours and DeadlineWarningHours set the urgency tier
	// boundaries reported on order reads. Empty values fall back to the
	// kernel defaults.
	DeadlineCriticalHours string
	DeadlineWarningHours  string
}
