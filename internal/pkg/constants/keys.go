package constants

const (
	ViperKeyListenAddr   = "server.listen_addr"
	ViperKeyCORSOrigins  = "server.cors_origins"
	ViperKeyDatabaseDSN  = "database.dsn"
	ViperKeyDataSource   = "data.source" // "postgres" or "fixture"
	ViperKeyCacheTTL     = "data.cache_ttl"
	ViperKeySecret       = "auth.secret"
	ViperKeyLogLevel     = "log.level"
)

const (
	CookieKeySecretToken = "admin_token"
	CtxKeyRequestID      = "request_id"
)

const HeaderRequestID = "X-Request-Id"
