package handler

import "github.com/souqly/marketplace-api/internal/api/metrics"

// observeMutation records the authorization outcome of a write and, when it
// succeeded, the mutation itself.
func observeMutation(resource, action string, err error) {
	metrics.ObserveAuthorization(err)
	if err == nil {
		metrics.ResourceMutationsTotal.WithLabelValues(resource, action).Inc()
	}
}
