// Package metrics collects Prometheus metrics for searches and replanning runs.
//
// A Recorder owns its own registry so that several recorders (tests, one per
// CLI run) never collide on the default one. The CLI dumps the registry in
// the text exposition format with WriteTextfile, for node_exporter's textfile
// collector or a plain diff.
package metrics
