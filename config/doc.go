// Package config loads the application configuration from config.yml,
// .env, and environment variables, in that order of precedence from
// lowest to highest. Secrets (API keys) normally arrive through the
// environment; everything else has workable defaults so the binary runs
// with no config file at all.
package config
