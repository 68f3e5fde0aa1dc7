// Package config loads runtime configuration for the gophdrop CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml/.yml are decoded with gopkg.in/yaml.v3, everything else as JSON.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the storage API
//	-i int      online status check interval (seconds)
//	-t int      request timeout (seconds)
//	-d string   download directory
//	-l string   log level
//
// # File schema
//
//	api_base_url: http://localhost:5000/api
//	online_check_interval: 3s
//	request_timeout: 30s
//	download_dir: download
//	log_level: info
//
// Environment variables are not read; use the file or flags.
package config
