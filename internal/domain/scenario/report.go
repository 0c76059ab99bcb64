package scenario

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// Outcome is the result of one calculation
type Outcome struct {
	Name    string                 `json:"name"`
	Tool    string                 `json:"tool"`
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   string                 `json:"error,omitempty"`
	Code    string                 `json:"code,omitempty"`
}

// Summary counts outcomes
type Summary struct {
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// Report collects the outcomes of a run
type Report struct {
	RunID    string    `json:"run_id"`
	Scenario string    `json:"scenario"`
	Results  []Outcome `json:"results"`
	Summary  Summary   `json:"summary"`
}

func (r *Report) summarize() {
	r.Summary = Summary{Total: len(r.Results)}
	for _, o := range r.Results {
		if o.Success {
			r.Summary.Succeeded++
		} else {
			r.Summary.Failed++
		}
	}
}

// JSON encodes the report as indented JSON
func (r *Report) JSON() ([]byte, error) {
	data, err := sonic.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return data, nil
}
