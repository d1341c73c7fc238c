package handler

import (
	"net/http"

	"callprep/internal/httputil"
)

// HealthCheck responds to load balancer probes.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
