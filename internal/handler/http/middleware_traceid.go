package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-fin-simulator/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

var traceIDs = utils.NewUUIDGenerator()

// withTraceID tags the request logger with trace_id, taken from the
// X-Trace-ID header or freshly generated, and echoes it back.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = traceIDs.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
