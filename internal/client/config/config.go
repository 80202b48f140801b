package config

import "time"

// Modes select the backend the CLI talks to.
const (
	ModeGRPC   = "grpc"
	ModeMemory = "memory"
)

// Config holds runtime settings for the ESG portal CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the identity server.
//   - DatabasePath: local SQLite file that keeps the session between runs.
//   - CallTimeout: upper bound of a single RPC.
//   - OnlineCheckInterval: how often the CLI probes server reachability.
//   - LogLevel: debug, info, warn or error.
//   - Mode: "grpc" talks to the server, "memory" runs a self-contained demo.
type Config struct {
	ServerEndpointAddr  string
	DatabasePath        string
	CallTimeout         time.Duration
	OnlineCheckInterval time.Duration
	LogLevel            string
	Mode                string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DatabasePath = "esgportal.db"
	c.CallTimeout = 15 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.LogLevel = "warn"
	c.Mode = ModeGRPC
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
