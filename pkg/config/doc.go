// Package config loads configuration structs from environment variables
// using `env` field tags, with optional .env file support for local
// development. Each config type is parsed once per process and cached, so
// any package can call Load for the types it needs without coordinating with
// the rest of the application.
package config
