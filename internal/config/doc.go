// Package config provides the layered application configuration and the
// centralized output paths.
//
// Configuration is resolved in three layers, later layers winning:
//
// 1. Built-in defaults (Default)
//
// 2. An optional config.yaml in the working directory
//
// 3. Environment variables with the RETAIL_ prefix
//
// Paths is the single source of truth for every file the analyzer writes;
// no other package builds report file names.
package config
