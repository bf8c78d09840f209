package config

// Config is the top-level movieshelf configuration, corresponding to .movieshelf.yml.
type Config struct {
	Port            int            `yaml:"port" koanf:"port"`
	DBPath          string         `yaml:"db_path" koanf:"db_path"`
	AllowAllOrigins bool           `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Seed            SeedConfig     `yaml:"seed" koanf:"seed"`
	PageSize        PageSizeConfig `yaml:"page_size" koanf:"page_size"`
}

// SeedConfig controls placeholder seeding of an empty catalog.
type SeedConfig struct {
	Enabled  bool `yaml:"enabled" koanf:"enabled"`
	MinCount int  `yaml:"min_count" koanf:"min_count"`
}

// PageSizeConfig holds list paging bounds.
type PageSizeConfig struct {
	Default int `yaml:"default" koanf:"default"`
	Max     int `yaml:"max" koanf:"max"`
}
