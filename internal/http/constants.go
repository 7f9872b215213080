package httpx

// SessionCookieName is the cookie carrying the opaque session identifier.
// The frontend and this gateway live on different origins, so the cookie is
// issued with SameSite=None and the Secure flag.
const SessionCookieName = "authgw_session"

// Fixed error bodies surfaced to the frontend. Failure reasons beyond these
// strings stay in the logs.
const (
	errMsgInvalidKeyword = "Invalid keyword"
	errMsgUnauthorized   = "Unauthorized"
	errMsgRateLimited    = "Too many requests"
)
