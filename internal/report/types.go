package report

import (
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/expr-pda/internal/suite"
)

type Report struct {
	Meta   Meta          `json:"meta"`
	Result *suite.Result `json:"result"`
}

type Meta struct {
	Suite       string          `json:"suite"`
	Description string          `json:"description,omitempty"`
	Version     string          `json:"version,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func New(s *suite.Suite, res *suite.Result) *Report {
	return &Report{
		Meta: Meta{
			Suite:       s.Name,
			Description: s.Description,
			Version:     s.Version,
			Timestamp:   time.Now().UTC(),
			Environment: CurrentEnvironment(),
		},
		Result: res,
	}
}

func CurrentEnvironment() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}
