package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"turkmorph.org/core/logger"
)

var defaultLogger = logger.NewLogger("API")

type endpointLoggerFields struct {
	Method string `json:"method"`
	Url    string `json:"url"`
}

const (
	RequestInfoFieldsKey = "request_info"
	RequestIDHeader      = "X-Request-Id"
)

// requestID reuses a valid id sent by the client, otherwise makes a new one.
func requestID(request *http.Request) string {
	if id, err := uuid.Parse(request.Header.Get(RequestIDHeader)); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

func makeRequestLogger(base zerolog.Logger, request *http.Request, id string) zerolog.Logger {
	fields := endpointLoggerFields{
		Method: request.Method,
		Url:    request.URL.String(),
	}
	return base.
		With().
		Str("request_id", id).
		Interface(RequestInfoFieldsKey, fields).
		Logger()
}
