package constants

import "time"

// Cookie sesi streaming: umur pendek, scoped ke path streaming saja.
const (
	StreamTokenCookie = "stream_token"
	StreamCookiePath  = "/stream"
	StreamCookieTTL   = 15 * time.Minute
)
