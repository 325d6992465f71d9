// Package config provides configuration management for the rowcheck CLI.
package config

// TargetConfig describes the database a check runs against.
type TargetConfig struct {
	// Type is the adapter type: duckdb, postgres, or sqlite.
	Type string `koanf:"type"`

	// Path is the file path for file-based databases; ":memory:" for in-memory.
	Path string `koanf:"path"`

	// Host and Port locate network-based databases.
	Host string `koanf:"host"`
	Port int    `koanf:"port"`

	// Database is the database name.
	Database string `koanf:"database"`

	// Username and Password authenticate the connection.
	Username string `koanf:"username"`
	Password string `koanf:"password"`

	// Schema is the default schema for unqualified table references.
	Schema string `koanf:"schema"`

	// Options carries driver-specific settings such as sslmode.
	Options map[string]string `koanf:"options"`
}

// Config holds all CLI configuration options.
type Config struct {
	Target       *TargetConfig `koanf:"target"`
	Severity     string        `koanf:"severity"`
	Commas       bool          `koanf:"commas"`
	Verbose      bool          `koanf:"verbose"`
	OutputFormat string        `koanf:"output"`
}

// Default configuration values.
const (
	DefaultTargetType = "duckdb"
	DefaultSeverity   = "error"
	DefaultOutput     = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)
