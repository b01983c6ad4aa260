// constants/config.go
package constants

// DefaultConfig represents the default configuration values
var DefaultConfig = map[string]interface{}{
	// App defaults
	"app.name":        "suasor",
	"app.environment": "development",
	"app.appURL":      "http://localhost:3000",
	"app.apiBaseURL":  "http://localhost:8080",
	"app.logLevel":    "info",
	"app.maxPageSize": 100,

	// Database defaults
	"db.host":     "localhost",
	"db.port":     "5432",
	"db.name":     "suasor",
	"db.user":     "postgres_user",
	"db.password": "yourpassword",
	"db.maxConns": 20,
	"db.timeout":  30,

	// HTTP defaults
	"http.port":             "8080",
	"http.readTimeout":      30,
	"http.writeTimeout":     30,
	"http.idleTimeout":      60,
	"http.enableSSL":        false,
	"http.rateLimitEnabled": true,
	"http.requestsPerMin":   100,

	// Auth defaults
	"auth.enableLocal":     true,
	"auth.sessionTimeout":  60,
	"auth.enable2FA":       false,
	"auth.tokenExpiration": 24,
	"auth.allowedOrigins":  []string{"http://localhost:3000"},

	"auth.jwtSecret":           "your-default-jwt-secret-change-me-in-production",
	"auth.accessExpiryMinutes": 15,
	"auth.refreshExpiryDays":   7,
	"auth.tokenIssuer":         "suasor-api",
	"auth.tokenAudience":       "suasor-client",

	// Redis defaults
	"redis.addr":     "localhost:6379",
	"redis.password": "",
	"redis.db":       0,

	// Recommendation core defaults
	"recommend.indexDir":             "./data/index",
	"recommend.embeddingDim":         384,
	"recommend.primaryIndexK":        30,
	"recommend.lexicalIndexK":        12,
	"recommend.topKReduce":           200,
	"recommend.searchCacheTTLSec":    45,
	"recommend.intentCacheTTLSec":    21600,
	"recommend.profileCacheTTLSec":   3600,
	"recommend.prefVectorTTLDays":    90,
	"recommend.interpProfileTTLDays": 30,
	"recommend.phaseLockTTLSec":      600,
	"recommend.listLockTTLSec":       3600,
	"recommend.pairwiseAlpha":        0.08,
	"recommend.mmrLambda":            0.7,
	"recommend.judgeBatchSize":       5,
	"recommend.judgeTimeoutSec":      90,
	"recommend.intentTimeoutSec":     60,
	"recommend.pairwiseMaxPairs":     400,
	"recommend.pairwiseBatchSize":    12,
}
