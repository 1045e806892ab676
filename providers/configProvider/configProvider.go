package configprovider

import (
	"os"
	"path/filepath"
	"strconv"

	"assetdesk/providers"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	defaultServerPort    = "3000"
	defaultAPIBaseURL    = "http://localhost:3000/api"
	defaultStorageDriver = "sqlite"
	defaultRedisAddr     = "localhost:6379"
	defaultLogLevel      = "info"

	APIModeMock    = "mock"
	APIModeNetwork = "network"
)

type EnvConfigProvider struct {
	serverPort      string
	apiBaseURL      string
	apiMode         string
	storageDriver   string
	storageDSN      string
	redisAddr       string
	logLevel        string
	logFile         string
	simulateLatency bool
}

func NewConfigProvider() providers.ConfigProvider {
	return &EnvConfigProvider{}
}

func (e *EnvConfigProvider) LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		zap.L().Debug(".env file not loaded, using system envs", zap.Error(err))
	}

	e.serverPort = getEnv("SERVER_PORT", defaultServerPort)
	e.apiBaseURL = getEnv("API_BASE_URL", defaultAPIBaseURL)
	e.apiMode = getEnv("API_MODE", APIModeMock)
	e.storageDriver = getEnv("STORAGE_DRIVER", defaultStorageDriver)
	e.storageDSN = getEnv("STORAGE_DSN", defaultStorageDSN())
	e.redisAddr = getEnv("REDIS_ADDR", defaultRedisAddr)
	e.logLevel = getEnv("LOG_LEVEL", defaultLogLevel)
	e.logFile = os.Getenv("LOG_FILE")
	e.simulateLatency, _ = strconv.ParseBool(os.Getenv("MOCK_SIMULATE_LATENCY"))
	return nil
}

func (e *EnvConfigProvider) GetServerPort() string {
	return e.serverPort
}

func (e *EnvConfigProvider) GetAPIBaseURL() string {
	return e.apiBaseURL
}

func (e *EnvConfigProvider) GetAPIMode() string {
	return e.apiMode
}

func (e *EnvConfigProvider) GetStorageDriver() string {
	return e.storageDriver
}

func (e *EnvConfigProvider) GetStorageDSN() string {
	return e.storageDSN
}

func (e *EnvConfigProvider) GetRedisAddr() string {
	return e.redisAddr
}

func (e *EnvConfigProvider) GetLogLevel() string {
	return e.logLevel
}

func (e *EnvConfigProvider) GetLogFile() string {
	return e.logFile
}

func (e *EnvConfigProvider) SimulateLatency() bool {
	return e.simulateLatency
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func defaultStorageDSN() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "assetdesk-session.db"
	}
	return filepath.Join(home, ".assetdesk", "session.db")
}
