package service

import "github.com/prometheus/client_golang/prometheus"

var pushDeliveriesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "lovenote_push_deliveries_total",
		Help: "Web Push deliveries by event and outcome",
	},
	[]string{"event", "outcome"},
)

func init() {
	prometheus.MustRegister(pushDeliveriesTotal)
}
