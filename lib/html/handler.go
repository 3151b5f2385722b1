package html

import (
	"net/http"
)

func handleFunc(serveMux *http.ServeMux, pattern string,
	handler func(w http.ResponseWriter, req *http.Request)) {
	serveMux.HandleFunc(pattern,
		func(w http.ResponseWriter, req *http.Request) {
			setSecurityHeaders(w)
			handler(w, req)
		})
}

func setSecurityHeaders(w http.ResponseWriter) {
	w.Header().Set("X-Frame-Options", "DENY")
	w.Header().Set("X-XSS-Protection", "1")
	w.Header().Set("X-Content-Type-Options", "nosniff")
}
