package config

import "os"

const defaultAddr = ":8080"

// Addr is the listen address of the board server.
func Addr() string {
	addr, ok := os.LookupEnv("APP_ADDR")
	if !ok || addr == "" {
		return defaultAddr
	}
	return addr
}
