package config

const (
	EnvPrefix = "MANNY"

	AppEnvDev  = "dev"
	AppEnvProd = "production"

	EnvAppEnv   = "MANNY_APP_ENV"
	EnvAppPort  = "MANNY_APP_PORT"
	EnvRedisURL = "MANNY_REDIS_URL"
)
