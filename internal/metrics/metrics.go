package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "jobboard_search_duration_seconds",
			Help:    "Duration of each job search request in seconds.",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)
	SearchCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_search_cache_lookups_total",
			Help: "Search cache lookups partitioned by result.",
		},
		[]string{"result"},
	)
	CVParseStepDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "jobboard_cv_parse_step_duration_seconds",
			Help:       "Duration of each step in the CV parsing pipeline.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"step"},
	)
	ApplicationsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobboard_applications_total",
			Help: "Total number of submitted job applications.",
		},
	)
	CleanedJobsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobboard_expired_jobs_cleaned_total",
			Help: "Total number of expired listings removed by the cleaner.",
		},
	)
)

func StartMetricsServer(port int) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(SearchCacheLookups)
	prometheus.MustRegister(CVParseStepDuration)
	prometheus.MustRegister(ApplicationsCounter)
	prometheus.MustRegister(CleanedJobsCounter)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), mux))
	}()
}
