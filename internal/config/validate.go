package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Journal.validate(); err != nil {
		return fmt.Errorf("journal: %w", err)
	}

	if c.Kafka.Brokers != "" && c.Kafka.Topic == "" {
		return fmt.Errorf("kafka.topic must not be empty when brokers are configured")
	}

	return nil
}

func (j JournalConfig) validate() error {
	if j.MaxContentBytes <= 0 {
		return fmt.Errorf("max_content_bytes must be > 0 (got %d)", j.MaxContentBytes)
	}
	if j.MaxMoodLen <= 0 {
		return fmt.Errorf("max_mood_len must be > 0 (got %d)", j.MaxMoodLen)
	}
	if j.MaxMoodNoteLen <= 0 {
		return fmt.Errorf("max_mood_note_len must be > 0 (got %d)", j.MaxMoodNoteLen)
	}
	// The streak window must cover any run the streak endpoint can report;
	// anything above a year works, 400 is the shipped default.
	if j.StreakWindowDays < 366 {
		return fmt.Errorf("streak_window_days must be >= 366 (got %d)", j.StreakWindowDays)
	}
	if j.MaxRecentLimit <= 0 {
		return fmt.Errorf("max_recent_limit must be > 0 (got %d)", j.MaxRecentLimit)
	}
	if j.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", j.DefaultPageSize)
	}
	return nil
}
