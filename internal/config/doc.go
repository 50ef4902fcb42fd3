// Package config provides configuration loading, merging, and validation
// facilities for the Teller Rehab API.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (a .env file is loaded into the environment first)
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetProbeConfig] for the health probe.
package config
