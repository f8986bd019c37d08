// Package metrics exports engine observations as Prometheus collectors.
//
// A Collector implements promethee.Recorder and registers its collectors on
// a caller-supplied prometheus.Registerer. Exposition (HTTP handler, push
// gateway) is left to the caller:
//
//	reg := prometheus.NewRegistry()
//	col, err := metrics.NewCollector(reg)
//	eng, err := promethee.New(alts, criteria, promethee.WithRecorder(col))
//	http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
package metrics
