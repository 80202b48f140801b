// Package config loads runtime configuration for the ESG portal CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the identity server
//	-d string   path of the local session database
//	-t int      per-call timeout (seconds)
//	-i int      online status check interval (seconds)
//	-l string   log level
//	-m string   backend mode: grpc or memory
//
// # JSON schema
//
// The JSON loader uses timex.Duration for timeouts, so values can be either
// strings like "15s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "database_path": "esgportal.db",
//	  "call_timeout": "15s",
//	  "online_check_interval": "3s",
//	  "log_level": "info",
//	  "mode": "grpc"
//	}
package config
