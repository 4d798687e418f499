package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/hongminglow/devcamper-be/internal/http/requestid"
	"github.com/hongminglow/devcamper-be/internal/http/respond"
)

// Recover catches panics escaping a handler, logs them with a stack trace,
// answers 500 and reports the failure through fatal so the process can shut
// down instead of serving from a possibly inconsistent state. The 500 body is
// skipped when the handler already started its response.
func Recover(log *zap.Logger, fatal func(error), next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tw := &writeTracker{ResponseWriter: w}
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}
			err := fmt.Errorf("panic serving %s %s: %v", r.Method, r.URL.Path, rec)
			log.Error("unhandled panic",
				zap.String("request_id", requestid.From(r.Context())),
				zap.Error(err),
				zap.Bool("response_started", tw.started),
				zap.ByteString("stack", debug.Stack()),
			)
			if !tw.started {
				respond.Error(w, log, http.StatusInternalServerError, "Server Error")
			}
			if fatal != nil {
				fatal(err)
			}
		}()
		next.ServeHTTP(tw, r)
	})
}

// writeTracker records whether headers or body have been sent.
type writeTracker struct {
	http.ResponseWriter
	started bool
}

func (t *writeTracker) WriteHeader(code int) {
	t.started = true
	t.ResponseWriter.WriteHeader(code)
}

func (t *writeTracker) Write(b []byte) (int, error) {
	t.started = true
	return t.ResponseWriter.Write(b)
}

func (t *writeTracker) Unwrap() http.ResponseWriter { return t.ResponseWriter }
