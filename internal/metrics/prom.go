package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	assignRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workers_assignment_runs_total",
			Help: "Number of assignment runs",
		},
		[]string{"strategy", "outcome"},
	)

	assignDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "workers_assignment_duration_seconds",
			Help:    "Assignment computation time",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"strategy"},
	)

	forcedPairs = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "workers_assignment_forced_pairs_total",
			Help: "Pairs placed by the coverage fallback, ignoring the double-booking cap",
		},
	)

	rostersImported = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workers_assignment_rosters_imported_total",
			Help: "Skill workbooks imported",
		},
		[]string{"outcome"},
	)
)

// Register 注册全部指标
func Register(r prometheus.Registerer) {
	r.MustRegister(assignRuns, assignDuration, forcedPairs, rostersImported)
}

// RecordAssignment 记录一次分配
func RecordAssignment(strategy string, degraded bool, forced int, d time.Duration) {
	outcome := "compliant"
	if degraded {
		outcome = "degraded"
	}
	assignRuns.WithLabelValues(strategy, outcome).Inc()
	assignDuration.WithLabelValues(strategy).Observe(d.Seconds())
	forcedPairs.Add(float64(forced))
}

// RecordAssignmentError 记录被拒绝的分配请求
func RecordAssignmentError() {
	assignRuns.WithLabelValues("none", "rejected").Inc()
}

// RecordRosterImport 记录名册导入
func RecordRosterImport(success bool) {
	outcome := "success"
	if !success {
		outcome = "error"
	}
	rostersImported.WithLabelValues(outcome).Inc()
}
