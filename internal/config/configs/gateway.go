package configs

import "time"

// Gateway configures access to the Vendor Gateway that fronts the ad
// platforms. Retry and breaker settings apply per platform adapter.
type Gateway struct {
	// BaseURL is the gateway root, e.g. http://gateway:8000.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8000"`
	// AuthToken is sent as a bearer token on every gateway call.
	AuthToken string `env:"AUTH_TOKEN"`
	// Timeout bounds a single HTTP request to the gateway.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
	// RetryCount is the total number of attempts for transient failures.
	RetryCount int `env:"RETRY_COUNT" envDefault:"3"`
	// RetryBaseDelay is the backoff base; delays double per attempt with
	// jitter.
	RetryBaseDelay time.Duration `env:"RETRY_BASE_DELAY" envDefault:"200ms"`
	// BreakerFailureThreshold is the run of consecutive failed calls that
	// opens an adapter's circuit breaker. Zero disables the breaker.
	BreakerFailureThreshold int `env:"BREAKER_FAILURE_THRESHOLD" envDefault:"5"`
	// BreakerCooldown is how long an open breaker rejects calls before
	// probing again.
	BreakerCooldown time.Duration `env:"BREAKER_COOLDOWN" envDefault:"60s"`
}
