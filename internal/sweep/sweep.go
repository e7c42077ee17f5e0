package sweep

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/gocarina/gocsv"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/worksim/internal/work"
	"gonum.org/v1/gonum/floats"
)

// Row is the work done at one angle.
type Row struct {
	Angle float64 `csv:"angle_deg" json:"angle"`
	Work  float64 `csv:"work_j" json:"work"`
	Fx    float64 `csv:"fx_n" json:"fx"`
	Fy    float64 `csv:"fy_n" json:"fy"`
}

type Options struct {
	From, To float64 // degrees
	Points   int
}

func DefaultOptions() Options {
	return Options{From: -180, To: 180, Points: 73}
}

// Run evaluates the calculator at evenly spaced angles from From to To inclusive.
func Run(force, distance float64, opt Options) []Row {
	if opt.Points < 2 {
		opt.Points = 2
	}
	angles := floats.Span(make([]float64, opt.Points), opt.From, opt.To)
	rows := make([]Row, len(angles))
	for i, a := range angles {
		r := work.Compute(force, a, distance)
		rows[i] = Row{Angle: a, Work: r.Work, Fx: r.Fx, Fy: r.Fy}
	}
	return rows
}

func Works(rows []Row) []float64 {
	w := make([]float64, len(rows))
	for i, r := range rows {
		w[i] = r.Work
	}
	return w
}

// Extrema returns the rows with the least and greatest work.
func Extrema(rows []Row) (lo, hi Row, ok bool) {
	if len(rows) == 0 {
		return Row{}, Row{}, false
	}
	w := Works(rows)
	return rows[floats.MinIdx(w)], rows[floats.MaxIdx(w)], true
}

// Nearest returns the index of the row whose angle is closest to deg.
func Nearest(rows []Row, deg float64) int {
	best, bestD := -1, 0.0
	for i, r := range rows {
		d := r.Angle - deg
		if d < 0 {
			d = -d
		}
		if best < 0 || d < bestD {
			best, bestD = i, d
		}
	}
	return best
}

func WriteCSV(w io.Writer, rows []Row) error {
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

func WriteJSON(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// WriteTable prints rows aligned; the row at index mark is flagged (-1 for none).
func WriteTable(w io.Writer, rows []Row, mark int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ANGLE\tWORK (J)\tFx (N)\tFy (N)\t")
	for i, r := range rows {
		flag := ""
		if i == mark {
			flag = "<"
		}
		fmt.Fprintf(tw, "%.1f°\t%.2f\t%.2f\t%.2f\t%s\n", r.Angle, r.Work, r.Fx, r.Fy, flag)
	}
	return tw.Flush()
}

// Plot draws work against angle.
func Plot(rows []Row, width, height int, caption string) string {
	if len(rows) == 0 {
		return ""
	}
	opts := []asciigraph.Option{asciigraph.Height(height), asciigraph.Precision(0)}
	if width > 0 {
		opts = append(opts, asciigraph.Width(width))
	}
	if caption != "" {
		opts = append(opts, asciigraph.Caption(caption))
	}
	return asciigraph.Plot(Works(rows), opts...)
}
