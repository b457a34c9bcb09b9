package router

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/expr-pda/internal/apperr"
	"github.com/DjordjeVuckovic/expr-pda/internal/checker"
	"github.com/DjordjeVuckovic/expr-pda/internal/domain"
	"github.com/DjordjeVuckovic/expr-pda/internal/dto"
	"github.com/DjordjeVuckovic/expr-pda/internal/storage"
	"github.com/DjordjeVuckovic/expr-pda/pkg/pagination"
)

type CheckRouter struct {
	e       *echo.Echo
	checker *checker.Checker
	store   storage.Store
}

func NewCheckRouter(e *echo.Echo, c *checker.Checker, store storage.Store) *CheckRouter {
	return &CheckRouter{
		e:       e,
		checker: c,
		store:   store,
	}
}

func (r *CheckRouter) Bind() {
	v1 := r.e.Group("/v1")
	v1.POST("/convert", r.convertHandler)
	v1.POST("/validate/infix", r.validateInfixHandler)
	v1.POST("/validate/postfix", r.validatePostfixHandler)
	v1.GET("/checks", r.listChecksHandler)
	v1.GET("/checks/:id", r.getCheckHandler)
}

// convertHandler godoc
// @Summary Convert infix to postfix
// @Description Runs the shunting-yard conversion. Unbalanced parentheses are rejected with 400.
// @Tags checks
// @Accept json
// @Produce json
// @Param request body dto.ExpressionRequest true "Infix expression"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} apperr.ErrorResponse
// @Router /v1/convert [post]
func (r *CheckRouter) convertHandler(c echo.Context) error {
	expr, err := bindExpression(c)
	if err != nil {
		return err
	}

	report := r.checker.CheckInfix(expr)
	id := r.record(c, domain.KindConvert, report)
	if report.Err != nil {
		return apperr.NewValidationWrap("invalid expression", report.Err)
	}

	return c.JSON(http.StatusOK, dto.ConvertResponse{
		ID:         id,
		Expression: report.Expression,
		Postfix:    report.Postfix,
	})
}

// validateInfixHandler godoc
// @Summary Validate an infix expression
// @Description Converts the expression to postfix and runs the pushdown automaton on the result.
// @Tags checks
// @Accept json
// @Produce json
// @Param request body dto.ExpressionRequest true "Infix expression"
// @Success 200 {object} dto.InfixResponse
// @Failure 400 {object} apperr.ErrorResponse
// @Router /v1/validate/infix [post]
func (r *CheckRouter) validateInfixHandler(c echo.Context) error {
	expr, err := bindExpression(c)
	if err != nil {
		return err
	}

	report := r.checker.CheckInfix(expr)
	id := r.record(c, domain.KindInfix, report)

	resp := dto.InfixResponse{
		ID:         id,
		Expression: report.Expression,
		Tokens:     report.Tokens,
		Postfix:    report.Postfix,
		Accepted:   report.Accepted(),
		Reason:     report.Reason(),
	}
	if report.Err != nil {
		resp.Error = report.Err.Error()
	}
	return c.JSON(http.StatusOK, resp)
}

// validatePostfixHandler godoc
// @Summary Validate a postfix expression
// @Description Runs the pushdown automaton. Set trace to receive every transition.
// @Tags checks
// @Accept json
// @Produce json
// @Param request body dto.PostfixRequest true "Postfix expression"
// @Success 200 {object} dto.PostfixResponse
// @Failure 400 {object} apperr.ErrorResponse
// @Router /v1/validate/postfix [post]
func (r *CheckRouter) validatePostfixHandler(c echo.Context) error {
	var req dto.PostfixRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	report := r.checker.CheckPostfix(req.Expression)
	id := r.record(c, domain.KindPostfix, report)

	resp := dto.PostfixResponse{
		ID:         id,
		Expression: report.Expression,
		Accepted:   report.Accepted(),
		Reason:     report.Reason(),
		FailedAt:   report.Result.FailedAt,
		Depth:      report.Result.Depth,
	}
	if req.Trace {
		resp.Steps = report.Result.Steps
	}
	return c.JSON(http.StatusOK, resp)
}

// listChecksHandler godoc
// @Summary List recorded checks
// @Description Returns the check history, newest first.
// @Tags checks
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size (max 100)"
// @Success 200 {object} pagination.OffsetResult[domain.Check]
// @Failure 400 {object} apperr.ErrorResponse
// @Router /v1/checks [get]
func (r *CheckRouter) listChecksHandler(c echo.Context) error {
	page, err := parsePage(c)
	if err != nil {
		return err
	}

	res, err := r.store.List(c.Request().Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// getCheckHandler godoc
// @Summary Get a recorded check
// @Tags checks
// @Produce json
// @Param id path string true "Check ID"
// @Success 200 {object} domain.Check
// @Failure 400 {object} apperr.ErrorResponse
// @Failure 404 {object} apperr.ErrorResponse
// @Router /v1/checks/{id} [get]
func (r *CheckRouter) getCheckHandler(c echo.Context) error {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return apperr.NewValidationWrap("invalid check id", err)
	}

	check, err := r.store.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.NewNotFound("check", raw)
		}
		return err
	}
	return c.JSON(http.StatusOK, check)
}

// record stores the check and returns its id. A failing store does not fail the request.
func (r *CheckRouter) record(c echo.Context, kind domain.CheckKind, report checker.Report) string {
	check := domain.NewCheck(kind, report)
	id, err := r.store.Save(c.Request().Context(), check)
	if err != nil {
		slog.Warn("Failed to record check", "kind", kind, "expression", report.Expression, "error", err)
		return ""
	}
	return id.String()
}

func bindExpression(c echo.Context) (string, error) {
	var req dto.ExpressionRequest
	if err := c.Bind(&req); err != nil {
		return "", apperr.NewValidationWrap("invalid request body", err)
	}
	return req.Expression, nil
}

func parsePage(c echo.Context) (pagination.OffsetRequest, error) {
	page := pagination.OffsetRequest{Page: 1, Size: pagination.PageDefaultSize}

	if v := strings.TrimSpace(c.QueryParam("page")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return page, apperr.NewValidation("page must be a positive integer")
		}
		page.Page = n
	}

	if v := strings.TrimSpace(c.QueryParam("size")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > pagination.PageMaxSize {
			return page, apperr.NewValidation("size must be between 1 and " + strconv.Itoa(pagination.PageMaxSize))
		}
		page.Size = n
	}

	if page.Page > page.MaxPage() {
		return page, apperr.NewValidation("page is out of range")
	}

	return page, nil
}
