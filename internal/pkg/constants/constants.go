package constants

const (
	ViperKeyHTTPAddr   = "http_addr"
	ViperKeyDatabaseDSN = "database_dsn"
	ViperKeyCORSOrigin = "cors_origin"
)
