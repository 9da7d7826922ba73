package middleware

const (
	headerAuthorization = "Authorization"
	headerInternalKey   = "X-Internal-Key"
	headerRequestID     = "X-Request-ID"
	bearerPrefix        = "Bearer "
)
