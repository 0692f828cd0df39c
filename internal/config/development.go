package config

import "os"

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// LogFile is the path of the rotated log file, if one is configured.
func LogFile() (string, bool) {
	path, ok := os.LookupEnv("LOG_FILE")
	return path, ok && path != ""
}
