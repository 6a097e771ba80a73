// Package config loads runtime configuration for the Refugio terminal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the sync server
//	-d string   path of the local SQLite database
//	-l string   log file
//	-i int      draft autosave interval (seconds)
//	-v          debug logging
//
// # JSON schema
//
// Intervals use timex.Duration, so values can be strings like "5s" or integer
// nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "database_path": "refugio.db",
//	  "log_file": "refugio.log",
//	  "autosave_interval": "5s"
//	}
package config
