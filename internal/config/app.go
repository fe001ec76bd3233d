package config

import "os"

func BasePath() string {
	return os.Getenv("APP_BASE_PATH")
}

// Addr is the listen address, ":8080" unless APP_PORT says otherwise.
func Addr() string {
	if port := os.Getenv("APP_PORT"); port != "" {
		return ":" + port
	}
	return ":8080"
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}
