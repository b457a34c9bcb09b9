package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/DjordjeVuckovic/expr-pda/internal/domain"
)

func LoadFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}

	seen := make(map[string]struct{}, len(s.Cases))
	for i, c := range s.Cases {
		if c.ID == "" {
			return nil, fmt.Errorf("case at index %d has no id", i)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = struct{}{}

		if c.Kind == "" {
			return nil, fmt.Errorf("case %q has no kind", c.ID)
		}
		if c.Expect.IsEmpty() {
			return nil, fmt.Errorf("case %q has no expectations", c.ID)
		}
		if c.Kind == domain.KindPostfix && (c.Expect.Postfix != nil || c.Expect.Error != "") {
			return nil, fmt.Errorf("case %q: postfix cases can only expect accepted", c.ID)
		}
	}

	return &s, nil
}
