package api

import (
	"fmt"
	"net/http"
)

const requestIdHeader = "X-Request-Id"

func (s *MessengerApp) errorHandler(next http.Handler) http.Handler {
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

// requestIdHandler stamps every response with a short request id so a
// failure in the access log can be matched to a client report.
func (s *MessengerApp) requestIdHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqId := r.Header.Get(requestIdHeader)
		if reqId == "" {
			var err error
			reqId, err = s.sid.Generate()
			if err != nil {
				s.log.Printf("generate request id: %v", err)
			}
		}

		if reqId != "" {
			w.Header().Set(requestIdHeader, reqId)
		}

		next.ServeHTTP(w, r)
	})
}
