package config

import "time"

// File represents the structure of the sourcerer.yaml configuration file.
type File struct {
	Version          string   `yaml:"version"`
	Mount            string   `yaml:"mount"`
	Catalog          string   `yaml:"catalog"`
	Report           string   `yaml:"report"`
	Analysis         string   `yaml:"analysis"`
	State            string   `yaml:"state"`
	Workers          int      `yaml:"workers"`
	ProgressInterval int      `yaml:"progressInterval"`
	Build            BuildDTO `yaml:"build"`
	Index            IndexDTO `yaml:"index"`
}

// BuildDTO configures the build tool invocation.
type BuildDTO struct {
	Tool    string            `yaml:"tool"`
	Target  string            `yaml:"target"`
	Timeout time.Duration     `yaml:"timeout"`
	Env     map[string]string `yaml:"env"`
}

// IndexDTO configures the indexing service client.
type IndexDTO struct {
	URL          string        `yaml:"url"`
	Timeout      time.Duration `yaml:"timeout"`
	PollInterval time.Duration `yaml:"pollInterval"`
}
