package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	SourceHTTP    = "http"
	SourceNATS    = "nats"
	SourceStartup = "startup"

	StatusOK         = "ok"
	StatusIncomplete = "incomplete"
)

var Registry = prometheus.NewRegistry()

var ConfigLoadCounter = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "firebase_config_loads_total",
		Help: "Firebase config loads by source (http|nats|startup) and status (ok|incomplete).",
	},
	[]string{"source", "status"},
)

func init() {
	Registry.MustRegister(ConfigLoadCounter)
}

// ObserveLoad records the outcome of one config load.
func ObserveLoad(source string, err error) {
	status := StatusOK
	if err != nil {
		status = StatusIncomplete
	}
	ConfigLoadCounter.WithLabelValues(source, status).Inc()
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Init serves /metrics on addr in the background.
func Init(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		_ = srv.ListenAndServe()
	}()
	return srv
}
