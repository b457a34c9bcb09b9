package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/expr-pda/internal/checker"
)

// CheckKind names the pipeline entry point a check went through.
type CheckKind string

const (
	KindInfix   CheckKind = "infix"
	KindPostfix CheckKind = "postfix"
	KindConvert CheckKind = "convert"
)

func ParseCheckKind(s string) (CheckKind, error) {
	k := CheckKind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case KindInfix, KindPostfix, KindConvert:
		return k, nil
	default:
		return "", fmt.Errorf("invalid check kind: %q (must be 'infix', 'postfix' or 'convert')", s)
	}
}

func (k CheckKind) String() string {
	return string(k)
}

func (k *CheckKind) UnmarshalText(text []byte) error {
	parsed, err := ParseCheckKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Check is one recorded run of the pipeline.
type Check struct {
	ID         uuid.UUID `json:"id"`
	Kind       CheckKind `json:"kind"`
	Expression string    `json:"expression"`
	Postfix    string    `json:"postfix,omitempty"`
	Accepted   bool      `json:"accepted"`
	Reason     string    `json:"reason"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewCheck builds a history record from a pipeline report. For KindConvert,
// Accepted means the conversion succeeded.
func NewCheck(kind CheckKind, r checker.Report) Check {
	c := Check{
		ID:         uuid.New(),
		Kind:       kind,
		Expression: r.Expression,
		Postfix:    r.Postfix,
		CreatedAt:  time.Now().UTC(),
	}
	if r.Err != nil {
		c.Error = r.Err.Error()
	}

	if kind == KindConvert {
		c.Accepted = r.Err == nil
		c.Reason = "converted"
		if r.Err != nil {
			c.Reason = r.Reason()
		}
		return c
	}

	c.Accepted = r.Accepted()
	c.Reason = r.Reason()
	return c
}
