package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535] (got %d)", c.Server.Port)
	}
	if c.Server.RateLimitPerMinute < 1 {
		return fmt.Errorf("server.rate_limit_per_minute must be > 0 (got %d)", c.Server.RateLimitPerMinute)
	}

	if err := c.Enrichment.validate(); err != nil {
		return fmt.Errorf("enrichment: %w", err)
	}

	if c.Import.ChunkSize < 1 {
		return fmt.Errorf("import.chunk_size must be > 0 (got %d)", c.Import.ChunkSize)
	}
	if c.Import.MaxRows < 1 {
		return fmt.Errorf("import.max_rows must be > 0 (got %d)", c.Import.MaxRows)
	}

	if c.Oracle.LLMEnabled() && c.Oracle.LLMModel == "" {
		return fmt.Errorf("oracle.llm_model must be set when oracle.llm_api_key is present")
	}
	if c.Oracle.FreeDictEnabled && c.Oracle.FreeDictBaseURL == "" {
		return fmt.Errorf("oracle.freedict_base_url must be set when oracle.freedict_enabled is true")
	}

	return nil
}

func (e *EnrichmentConfig) validate() error {
	if e.BatchSize < 1 {
		return fmt.Errorf("batch_size must be > 0 (got %d)", e.BatchSize)
	}
	if e.BatchDelay < 0 {
		return fmt.Errorf("batch_delay must be >= 0 (got %v)", e.BatchDelay)
	}
	if e.OracleTimeout <= 0 {
		return fmt.Errorf("oracle_timeout must be > 0 (got %v)", e.OracleTimeout)
	}
	if e.MaxBatchWords < 1 {
		return fmt.Errorf("max_batch_words must be > 0 (got %d)", e.MaxBatchWords)
	}
	return nil
}
