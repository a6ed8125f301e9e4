package gallery

// Config holds configuration for the remote gallery API client.
type Config struct {
	// BaseURL is the root of the gallery API.
	BaseURL string `mapstructure:"base_url" default:"https://api.space-invaders.com/flashinvaders"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"15"`
	// RetryMax is the number of retries for failed requests.
	RetryMax int `mapstructure:"retry_max" default:"3"`
	// CacheTTLSeconds is how long a stored gallery snapshot stays fresh.
	// Zero disables the snapshot cache.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
}
