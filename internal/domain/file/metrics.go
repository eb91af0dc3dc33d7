package file

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// operationsTotal counts ingestion and removal outcomes. Updated from the
// service layer; scraped via /metrics.
var operationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "studenthub_file_operations_total",
		Help: "Course file operations by outcome",
	},
	[]string{"operation", "result"},
)
