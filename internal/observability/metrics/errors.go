package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var DomainErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_domain_errors_total",
		Help: "Total number of domain errors by category and code",
	},
	[]string{"category", "code", "status"},
)
