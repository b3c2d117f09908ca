// Package config provides configuration loading, merging, and validation
// facilities for the go-shop-keeper server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file in the working directory (or ENV_FILE)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The main entry point is [GetStructuredConfig]. DATABASE_URL and JWT_SECRET
// are mandatory; everything else has a default.
package config
