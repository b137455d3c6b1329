package events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "audit_events_total",
		Help: "Total number of audit events published",
	},
	[]string{"topic"},
)

var AuditPublishErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "audit_publish_errors_total",
		Help: "Total number of failed audit event publications",
	},
)
