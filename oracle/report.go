// SPDX-License-Identifier: MIT

package oracle

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// Result is the outcome of one check.
type Result struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Passed      bool          `yaml:"passed"`
	Deviation   float64       `yaml:"deviation"`
	Tolerance   float64       `yaml:"tolerance"`
	Iterations  int           `yaml:"iterations"`
	Detail      string        `yaml:"detail,omitempty"`
	Duration    time.Duration `yaml:"duration"`
}

// String is the one-line diagnostic used by WriteText.
func (r Result) String() string {
	if r.Passed {
		return fmt.Sprintf("PASS %s: deviation %.3g <= %.3g (%d iterations, %s)",
			r.Name, r.Deviation, r.Tolerance, r.Iterations, r.Duration.Round(time.Millisecond))
	}
	return fmt.Sprintf("FAIL %s: %s violated: deviation %.3g > %.3g (%s)",
		r.Name, r.Description, r.Deviation, r.Tolerance, r.Detail)
}

// Report aggregates the results of one run in registry order.
type Report struct {
	Seed           int64    `yaml:"seed"`
	IterationScale float64  `yaml:"iteration_scale"`
	Results        []Result `yaml:"results"`
}

// Passed reports whether every check passed.
func (r *Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed {
			return false
		}
	}
	return true
}

// Failures returns the failed results in registry order.
func (r *Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Passed {
			out = append(out, res)
		}
	}
	return out
}

// WriteText writes one line per result followed by a summary line.
func (r *Report) WriteText(w io.Writer) error {
	for _, res := range r.Results {
		if _, err := fmt.Fprintln(w, res.String()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "seed %d, scale %g: %d/%d passed\n",
		r.Seed, r.IterationScale, len(r.Results)-len(r.Failures()), len(r.Results))
	return err
}

// WriteYAML encodes the report as a YAML document.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}
	return enc.Close()
}
