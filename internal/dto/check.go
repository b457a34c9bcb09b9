package dto

import (
	"github.com/DjordjeVuckovic/expr-pda/internal/pda"
	"github.com/DjordjeVuckovic/expr-pda/internal/token"
)

type ExpressionRequest struct {
	Expression string `json:"expression" example:"(a+b)*c"`
}

type PostfixRequest struct {
	Expression string `json:"expression" example:"a b + c *"`
	Trace      bool   `json:"trace,omitempty"`
}

type ConvertResponse struct {
	ID         string `json:"id,omitempty"`
	Expression string `json:"expression"`
	Postfix    string `json:"postfix"`
}

type InfixResponse struct {
	ID         string        `json:"id,omitempty"`
	Expression string        `json:"expression"`
	Tokens     []token.Token `json:"tokens"`
	Postfix    string        `json:"postfix"`
	Accepted   bool          `json:"accepted"`
	Reason     string        `json:"reason"`
	Error      string        `json:"error,omitempty"`
}

type PostfixResponse struct {
	ID         string     `json:"id,omitempty"`
	Expression string     `json:"expression"`
	Accepted   bool       `json:"accepted"`
	Reason     string     `json:"reason"`
	FailedAt   int        `json:"failed_at"`
	Depth      int        `json:"depth"`
	Steps      []pda.Step `json:"steps,omitempty"`
}
