package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TokensIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_tokens_issued_total",
			Help: "Total number of access tokens issued",
		},
	)

	TokenVerifyFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_token_verify_failures_total",
			Help: "Total number of rejected bearer tokens",
		},
	)

	SignupsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_signups_total",
			Help: "Total number of successful signups",
		},
	)

	SigninsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_signins_total",
			Help: "Total number of successful signins",
		},
	)
)
