package api

import (
	"fmt"
	"net/http"

	"github.com/felixge/httpsnoop"
)

func (s *SocialApp) errorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				var panicError error
				switch e := err.(type) {
				case error:
					panicError = e
				default:
					panicError = fmt.Errorf("%v", e)
				}
				s.log.Printf("panic: %v", panicError)
				errResp := NewInternalServerError(panicError)
				w.Header().Set("Connection", "close")
				s.writeJson(w, errResp.StatusCode, errResp)
				return
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (s *SocialApp) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)

		s.stats.Incr(metricRequests)
		switch {
		case m.Code >= http.StatusInternalServerError:
			s.stats.Incr(metricResponses5xx)
		case m.Code >= http.StatusBadRequest:
			s.stats.Incr(metricResponses4xx)
		default:
			s.stats.Incr(metricResponses2xx)
		}
	})
}
