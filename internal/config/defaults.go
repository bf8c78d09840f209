package config

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:   8080,
		DBPath: "movieshelf.db",
		Seed: SeedConfig{
			Enabled:  true,
			MinCount: 30,
		},
		PageSize: PageSizeConfig{
			Default: 10,
			Max:     50,
		},
	}
}
