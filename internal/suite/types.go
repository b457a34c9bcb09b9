package suite

import (
	"github.com/DjordjeVuckovic/expr-pda/internal/domain"
)

type Suite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
	Cases       []Case `yaml:"cases"`
}

// Case is one expression and what the pipeline is expected to say about it.
type Case struct {
	ID          string           `yaml:"id"`
	Description string           `yaml:"description,omitempty"`
	Kind        domain.CheckKind `yaml:"kind"`
	Expression  string           `yaml:"expression"`
	Expect      Expectation      `yaml:"expect"`
}

// Expectation fields left unset are not checked. Error is matched as a
// substring of the conversion error.
type Expectation struct {
	Accepted *bool   `yaml:"accepted,omitempty"`
	Postfix  *string `yaml:"postfix,omitempty"`
	Error    string  `yaml:"error,omitempty"`
}

func (e Expectation) IsEmpty() bool {
	return e.Accepted == nil && e.Postfix == nil && e.Error == ""
}
