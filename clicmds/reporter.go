package clicmds

import "gitlab.com/puppetk/puppetk"

// countingReporter logs and counts reported resolution errors
type countingReporter struct {
	puppetk.LogReporter
	count int
}

func (r *countingReporter) Error(message string) {
	r.count++
	r.LogReporter.Error(message)
}
