package domain

import "time"

// BenchReport is the outcome of a benchmark run: N timed executions of
// the interpreter against one script. It marshals to the JSON report
// written by --output.
type BenchReport struct {
	Script        string        `json:"script"`
	Configuration Config        `json:"configuration"`
	Binary        string        `json:"binary"`
	BinaryDigest  string        `json:"binaryDigest"`
	Iterations    int           `json:"iterations"`
	Total         time.Duration `json:"totalNs"`
	Average       time.Duration `json:"averageNs"`
	Min           time.Duration `json:"minNs"`
	Max           time.Duration `json:"maxNs"`
}

// NewBenchReport aggregates per-run samples into a report.
// samples must not be empty.
func NewBenchReport(script string, cfg Config, binary, digest string, samples []time.Duration) BenchReport {
	report := BenchReport{
		Script:        script,
		Configuration: cfg,
		Binary:        binary,
		BinaryDigest:  digest,
		Iterations:    len(samples),
	}

	for i, sample := range samples {
		report.Total += sample
		if i == 0 || sample < report.Min {
			report.Min = sample
		}
		if sample > report.Max {
			report.Max = sample
		}
	}
	report.Average = report.Total / time.Duration(len(samples))

	return report
}
