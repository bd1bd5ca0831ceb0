// Package observe provides foodsource.Observer implementations.
//
// Food sources never log or export anything themselves. A colony attaches
// one of these through foodsource.WithObserver:
//
//   - Collector exports Prometheus counters and a fitness histogram.
//   - Logger writes one key=value line per event through a *log.Logger.
//   - Multi fans an event out to several observers in order.
//
// Usage:
//
//	reg := prometheus.NewRegistry()
//	col, err := observe.NewCollector(reg)
//	if err != nil {
//	  return err
//	}
//	obs := observe.Multi{col, observe.NewLogger(nil)}
//	fs, _ := foodsource.New(nodes, 2, 0, foodsource.WithObserver(obs))
//
// Observers run synchronously on the goroutine that mutates the food source.
// Collector is safe for concurrent use; Logger is as safe as its *log.Logger.
package observe
