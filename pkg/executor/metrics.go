package executor

import "github.com/VictoriaMetrics/metrics"

var (
	stepAdded     = metrics.NewCounter("executor_step_added")
	stepCompleted = metrics.NewCounter("executor_step_completed")
	stepPanicked  = metrics.NewCounter("executor_step_panicked")
)
