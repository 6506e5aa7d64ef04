package domain

import (
	"net/url"
	"time"
)

// Config is the resolved runtime configuration.
type Config struct {
	MountRoot        string
	CatalogPath      string
	ReportPath       string
	AnalysisPath     string
	StateDir         string
	Workers          int
	ProgressInterval int
	Build            BuildSettings
	Index            IndexSettings
}

// IndexSettings configures the indexing service client.
type IndexSettings struct {
	URL          string
	Timeout      time.Duration
	PollInterval time.Duration
}

// Defaults used when the config file leaves a value unset.
const (
	DefaultWorkers          = 24
	DefaultProgressInterval = 100
	DefaultBuildTool        = "ant"
	DefaultBuildTarget      = "compile"
	DefaultCatalogName      = "compile_list.json"
	DefaultReportName       = "project_successmap.json"
	DefaultAnalysisName     = "projects_error.json"
	DefaultIndexTimeout     = 30 * time.Second
	DefaultPollInterval     = 10 * time.Second
)

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	return &Config{
		CatalogPath:      DefaultCatalogName,
		ReportPath:       DefaultReportName,
		AnalysisPath:     DefaultAnalysisName,
		StateDir:         StateDirName,
		Workers:          DefaultWorkers,
		ProgressInterval: DefaultProgressInterval,
		Build: BuildSettings{
			Tool:   DefaultBuildTool,
			Target: DefaultBuildTarget,
		},
		Index: IndexSettings{
			Timeout:      DefaultIndexTimeout,
			PollInterval: DefaultPollInterval,
		},
	}
}

// Validate checks the value ranges of a resolved configuration, including
// command-line overrides.
func (c *Config) Validate() error {
	switch {
	case c.Workers < 1:
		return WithMeta(ErrInvalidConfig, "workers", c.Workers)
	case c.ProgressInterval < 1:
		return WithMeta(ErrInvalidConfig, "progressInterval", c.ProgressInterval)
	case c.Build.Timeout < 0:
		return WithMeta(ErrInvalidConfig, "build.timeout", c.Build.Timeout)
	case c.Index.Timeout <= 0:
		return WithMeta(ErrInvalidConfig, "index.timeout", c.Index.Timeout)
	case c.Index.PollInterval <= 0:
		return WithMeta(ErrInvalidConfig, "index.pollInterval", c.Index.PollInterval)
	}

	if c.Index.URL != "" {
		u, err := url.Parse(c.Index.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return WithMeta(ErrInvalidConfig, "index.url", c.Index.URL)
		}
	}
	return nil
}
