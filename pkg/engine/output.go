package engine

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/wildfunctions/mathplot/pkg/plot"
)

// Report summarizes the current session.
type Report struct {
	SessionID       string `json:"session_id"`
	Input           string `json:"input"`
	Expression      string `json:"expression"`
	Derivative      string `json:"derivative"`
	ExpressionLaTeX string `json:"expression_latex"`
	DerivativeLaTeX string `json:"derivative_latex"`
	Nodes           int    `json:"nodes"`
	Depth           int    `json:"depth"`
}

// AreaReport is the result of an area computation.
type AreaReport struct {
	SessionID  string  `json:"session_id"`
	Expression string  `json:"expression"`
	Method     string  `json:"method"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Steps      int     `json:"steps"`
	Area       float64 `json:"area"`
}

// Report builds a Report for the current session.
func (e *Engine) Report() (Report, error) {
	s, err := e.current()
	if err != nil {
		return Report{}, err
	}
	forms, err := e.forms(s)
	if err != nil {
		return Report{}, err
	}
	return Report{
		SessionID:       s.ID,
		Input:           s.Input,
		Expression:      forms[0],
		Derivative:      forms[1],
		ExpressionLaTeX: s.Expression.LaTeX(),
		DerivativeLaTeX: s.Derivative.LaTeX(),
		Nodes:           s.Expression.NodeCount(),
		Depth:           s.Expression.Depth(),
	}, nil
}

// WriteTextReport writes a session report in human-readable format.
func WriteTextReport(w io.Writer, r Report) {
	fmt.Fprintf(w, "Input:        %s\n", r.Input)
	fmt.Fprintf(w, "Function:     %s\n", r.Expression)
	fmt.Fprintf(w, "Derivative:   %s\n", r.Derivative)
	fmt.Fprintf(w, "LaTeX:        %s\n", r.ExpressionLaTeX)
	fmt.Fprintf(w, "LaTeX (d/dx): %s\n", r.DerivativeLaTeX)
	fmt.Fprintf(w, "Nodes:        %d (depth %d)\n", r.Nodes, r.Depth)
}

// WriteTextArea writes an area result in human-readable format.
func WriteTextArea(w io.Writer, r AreaReport) {
	fmt.Fprintf(w, "Area of %s over [%g, %g] (%s, %d steps): %.6f\n",
		r.Expression, r.Min, r.Max, r.Method, r.Steps, r.Area)
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteSamplesCSV writes points as x,y,break rows with a header.
func WriteSamplesCSV(w io.Writer, pts iter.Seq[plot.Point]) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y", "break"}); err != nil {
		return err
	}
	for p := range pts {
		row := []string{
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
			strconv.FormatBool(p.Break),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSamplesText writes one point per line; break points are marked.
func WriteSamplesText(w io.Writer, pts iter.Seq[plot.Point]) {
	for p := range pts {
		if p.Break {
			fmt.Fprintf(w, "%12.6f  %12s  break\n", p.X, "-")
			continue
		}
		fmt.Fprintf(w, "%12.6f  %12.6f\n", p.X, p.Y)
	}
}
