package config

import (
	"fmt"

	"github.com/textwarden/obscenity-backend/internal/domain"
)

// Validate checks cross-field constraints that tag-level validation cannot
// express. All failures wrap domain.ErrConfiguration: a bad configuration
// must prevent startup, never surface at first use.
func (c *Config) Validate() error {
	if c.Filter.ObscenityIndicator <= 0 || c.Filter.ObscenityIndicator >= 1 {
		return fmt.Errorf("%w: filter.obscenity_indicator must be in (0,1), got %v",
			domain.ErrConfiguration, c.Filter.ObscenityIndicator)
	}

	if c.Filter.HarvestTimeout <= 0 {
		return fmt.Errorf("%w: filter.harvest_timeout must be positive", domain.ErrConfiguration)
	}

	if c.Filter.SuspiciousWordsCheck && c.LLM.APIKey == "" {
		return fmt.Errorf("%w: filter.suspicious_words_check requires llm.api_key",
			domain.ErrConfiguration)
	}

	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("%w: llm.max_tokens must be positive", domain.ErrConfiguration)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server.port must be in 1..65535, got %d",
			domain.ErrConfiguration, c.Server.Port)
	}

	if c.Server.RateLimitPerMinute < 0 {
		return fmt.Errorf("%w: server.rate_limit_per_minute must not be negative",
			domain.ErrConfiguration)
	}

	return nil
}
