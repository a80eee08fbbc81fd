// Package config provides configuration loading, merging, and validation
// facilities for the account service.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file (path from DOTENV_FILE, default ".env")
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Fields still unset after merging are taken from [Defaults]. The main entry
// point is [GetStructuredConfig].
package config
