package config

// Masonfile represents the structure of the mason.yaml settings file.
type Masonfile struct {
	Version   string            `yaml:"version"`
	Backend   string            `yaml:"backend"`
	Source    string            `yaml:"source"`
	BuildDir  string            `yaml:"buildDir"`
	Jobs      int               `yaml:"jobs"`
	Generator string            `yaml:"generator"`
	Defines   map[string]string `yaml:"defines"`
	Benchmark BenchmarkDTO      `yaml:"benchmark"`
	Examples  ExamplesDTO       `yaml:"examples"`
}

// BenchmarkDTO configures the bench command.
type BenchmarkDTO struct {
	Script     string `yaml:"script"`
	Iterations int    `yaml:"iterations"`
}

// ExamplesDTO configures the examples command.
type ExamplesDTO struct {
	Dir string `yaml:"dir"`
}
