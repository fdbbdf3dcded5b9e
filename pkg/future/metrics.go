package future

import "github.com/VictoriaMetrics/metrics"

var (
	workerStarted   = metrics.NewCounter("future_worker_started")
	resultDelivered = metrics.NewCounter("future_result_delivered")
	workerAborted   = metrics.NewCounter("future_worker_aborted")
	deliveryFailed  = metrics.NewCounter("future_delivery_failed")
)
