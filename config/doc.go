// Package config handles loading and validating locust-compare settings from
// an optional YAML file, LOCUST_COMPARE_* environment variables and command
// line flags bound into the same viper instance.
package config
