package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// This function will Load the ENVIORNMENT VARIABLES from .env if GO_ENV variable is not set
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")

	if goEnv == "" || goEnv == "development" {
		err := godotenv.Load()
		if err != nil {
			return err
		}
	}

	return nil
}

type EnviornmentVariable struct {
	// All variables
	GO_ENV       string
	API_BASE_URL string
	API_TIMEOUT  time.Duration
	// Session Configuration
	ADMIN_ACCESS_TOKEN string
	ADMIN_NAME         string
	// Redis Configuration
	REDIS_URL      string
	REDIS_PASSWORD string
	REDIS_DB       string
	// Reference cache
	REFDATA_TTL           time.Duration
	REFDATA_REFRESH_SPEC  string
	REFDATA_CACHE_ENABLED bool
}

func Get() (*EnviornmentVariable, error) {

	timeoutSec, err := strconv.Atoi(os.Getenv("API_TIMEOUT_SECONDS"))
	if err != nil {
		timeoutSec = 30
	}

	ttlMin, err := strconv.Atoi(os.Getenv("REFDATA_TTL_MINUTES"))
	if err != nil {
		ttlMin = 15
	}

	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://127.0.0.1:8000/api/v1"
	}

	refreshSpec := os.Getenv("REFDATA_REFRESH_SPEC")
	if refreshSpec == "" {
		// every 10 minutes, with seconds precision
		refreshSpec = "0 */10 * * * *"
	}

	envVariables := &EnviornmentVariable{
		GO_ENV:       os.Getenv("GO_ENV"),
		API_BASE_URL: baseURL,
		API_TIMEOUT:  time.Duration(timeoutSec) * time.Second,
		// Session
		ADMIN_ACCESS_TOKEN: os.Getenv("ADMIN_ACCESS_TOKEN"),
		ADMIN_NAME:         os.Getenv("ADMIN_NAME"),
		// Redis
		REDIS_URL:      os.Getenv("REDIS_URL"),
		REDIS_PASSWORD: os.Getenv("REDIS_PASSWORD"),
		REDIS_DB:       os.Getenv("REDIS_DB"),
		// Reference cache
		REFDATA_TTL:           time.Duration(ttlMin) * time.Minute,
		REFDATA_REFRESH_SPEC:  refreshSpec,
		REFDATA_CACHE_ENABLED: os.Getenv("REFDATA_CACHE_ENABLED") != "false",
	}

	return envVariables, nil
}
