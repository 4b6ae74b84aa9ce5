// Package config loads runtime configuration for the bookmarkd CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend HTTP endpoint
//	-f string   path of the local cache database file
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "http://127.0.0.1:3333",
//	  "cache_file": "bookmarks.db"
//	}
package config
