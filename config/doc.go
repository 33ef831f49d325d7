// Package config loads the streamreport configuration with viper, reading an
// optional YAML file, a .env file, prefixed environment variables and pflag
// flags.
package config
