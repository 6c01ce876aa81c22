// Package config loads the atomsite TOML configuration.
//
// Resolution order:
//
//  1. The path given with --config
//  2. ~/.config/atomsite/config.toml
//  3. Built-in defaults when the file does not exist
//
// Example config.toml:
//
//	address = ":5000"
//	api_url = "http://localhost:5000"
//	catalog_path = "catalog.yaml"
//	log_level = "debug"
//
// Every field is optional. ATOMSITE_API_URL takes precedence over
// api_url. A relative catalog_path is resolved against the directory of
// the config file.
package config
