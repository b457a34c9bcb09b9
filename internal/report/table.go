package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/DjordjeVuckovic/expr-pda/internal/checker"
)

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Expression Suite: %s ===\n\n", r.Meta.Suite)

	writeHeader(tw, "ID", "Kind", "Expression", "Postfix", "Verdict", "Time", "Status")
	for _, c := range r.Result.Cases {
		status := "PASS"
		if !c.Passed {
			status = "FAIL"
		}
		verdict := c.Reason
		if c.Error != "" && c.Error != c.Reason {
			verdict = c.Error
		}
		fmt.Fprintln(tw, strings.Join([]string{
			c.ID,
			string(c.Kind),
			c.Expression,
			orDash(c.Postfix),
			verdict,
			fmtDuration(c.Duration),
			status,
		}, "\t"))
	}
	fmt.Fprintln(tw)

	for _, c := range r.Result.Cases {
		for _, f := range c.Failures {
			fmt.Fprintf(tw, "FAIL %s: %s\n", c.ID, f)
		}
	}

	sum := r.Result.Summary
	fmt.Fprintf(tw, "\nTotal: %d\tPassed: %d\tFailed: %d\tp50: %s\tp95: %s\n",
		sum.Total, sum.Passed, sum.Failed, fmtDuration(sum.Latency.P50), fmtDuration(sum.Latency.P95))

	tw.Flush()
}

// WriteTrace prints every automaton transition of a checked expression.
func WriteTrace(rep checker.Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	writeHeader(tw, "Step", "Token", "Kind", "Action", "Depth")
	for _, s := range rep.Result.Steps {
		action := s.Action.String()
		if s.Rejected {
			action += " (rejected)"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n", s.Index, s.Token.Value, s.Token.Kind, action, s.Depth)
	}

	tw.Flush()
}

func writeHeader(tw *tabwriter.Writer, cols ...string) {
	fmt.Fprintln(tw, strings.Join(cols, "\t"))

	sep := make([]string, len(cols))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func fmtDuration(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
