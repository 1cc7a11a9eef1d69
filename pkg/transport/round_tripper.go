package transport

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/forexel/PrivetManagerApp/pkg/logger"
)

// LogRoundTripper логирует исходящие запросы и пробрасывает X-Request-Id,
// чтобы обращения к хранилищу можно было связать с входящим запросом.
type LogRoundTripper struct {
	Transport http.RoundTripper
}

func NewLogRoundTripper(transport http.RoundTripper) *LogRoundTripper {
	return &LogRoundTripper{Transport: transport}
}

func (l *LogRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	reqID := logger.RequestIDFromCtx(ctx)
	if reqID != "" {
		r.Header.Set("X-Request-Id", reqID)
	}

	slog.InfoContext(ctx, "outgoing request", "request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()))

	resp, err := l.Transport.RoundTrip(r)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}

	slog.InfoContext(ctx, "incoming response", "response", fmt.Sprintf("%s %s %d", r.Method, r.URL.Redacted(), resp.StatusCode))

	return resp, nil
}
