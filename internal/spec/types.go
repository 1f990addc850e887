package spec

type Config struct {
	Version int           `yaml:"version"`
	Profile ProfileConfig `yaml:"profile"`
	Session SessionConfig `yaml:"session"`
	Tasks   []TaskConfig  `yaml:"tasks"`
	Report  ReportConfig  `yaml:"report"`
}

type ProfileConfig struct {
	// Player labels the results; purely cosmetic.
	Player  string `yaml:"player"`
	DataDir string `yaml:"data_dir"`
}

type SessionConfig struct {
	// Seed fixes the stimulus randomization; 0 draws a fresh seed per
	// session.
	Seed int64  `yaml:"seed"`
	UI   string `yaml:"ui"`
}

type TaskConfig struct {
	ID string `yaml:"id"`
	// Level seeds the adaptive difficulty; the profile takes over after
	// the first session. Trial counts and time windows derive from it.
	Level int `yaml:"level"`
}

type ReportConfig struct {
	OutputDir string `yaml:"output_dir"`
	ServeAddr string `yaml:"serve_addr"`
}
