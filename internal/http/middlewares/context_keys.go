package middlewares

const (
	// CtxRequestID is the gin context key the request id middleware sets.
	CtxRequestID = "request_id"
)
