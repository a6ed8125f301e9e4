// Package config provides configuration management for the Invader Comparator.
//
// It utilizes Viper for loading configuration from environment variables and
// a .env file, with defaults declared as struct tags on the section configs.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Gallery: remote gallery API client (base URL, retries, cache TTL)
//   - Database: MySQL/SQLite connection details
//   - Storage: S3/MinIO credentials and snapshot bucket
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
