package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tortshark/campaign-analyst/pkg/utils"
)

const healthcheckTimeout = 2 * time.Second

// HealthCheck testa uma dependência (postgres, redis)
type HealthCheck func(ctx context.Context) error

type healthResponse struct {
	Time         string            `json:"time"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

// HealthcheckHandler responde 503 quando alguma dependência não responde dentro do timeout
func HealthcheckHandler(checks map[string]HealthCheck) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
		defer cancel()

		status := http.StatusOK
		response := healthResponse{Time: time.Now().UTC().Format(time.RFC3339)}
		if len(checks) > 0 {
			response.Dependencies = make(map[string]string, len(checks))
		}

		for name, check := range checks {
			if err := check(ctx); err != nil {
				logrus.WithError(err).WithField("dependency", name).Warn("healthcheck: dependency down")
				response.Dependencies[name] = "down"
				status = http.StatusServiceUnavailable
				continue
			}
			response.Dependencies[name] = "up"
		}

		if err := utils.WriteJSON(w, status, response); err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
