// Package metrics exposes Prometheus counters for the Central client.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "central",
		Name:      "http_requests_total",
		Help:      "Requests issued on the request channel, by method and status.",
	}, []string{"method", "status"})

	SocketCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "central",
		Name:      "socket_calls_total",
		Help:      "Calls issued on the event channel, by event and result.",
	}, []string{"event", "result"})

	SocketConnects = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "central",
		Name:      "socket_connects_total",
		Help:      "Event channel connection attempts, by result.",
	}, []string{"result"})
)

func ObserveHTTP(method string, status int) {
	HTTPRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

func ObserveCall(event, result string) {
	SocketCalls.WithLabelValues(event, result).Inc()
}

func ObserveConnect(result string) {
	SocketConnects.WithLabelValues(result).Inc()
}
