// Package config loads and validates application settings from an optional
// .env file, an optional config.yaml and HBNB_-prefixed environment
// variables, using viper and go-playground/validator.
package config
