package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	physconst "github.com/JackRBlack/physics-constant"
	"github.com/JackRBlack/physics-constant/config"
	"github.com/JackRBlack/physics-constant/internal/term"
)

// Units that read naturally with an SI prefix, e.g. "pm" or "kPa".
var prefixable = map[string]bool{
	"m": true, "s": true, "Pa": true, "C": true, "J": true, "N": true, "eV": true,
}

var (
	colorHeading = lipgloss.Color("#00CC33")
	colorSymbol  = lipgloss.Color("#FFCC00")
	colorDim     = lipgloss.Color("#808080")
)

var title = cases.Title(language.English)

type style func(string) string

func plain(s string) string { return s }

func styleOf(st lipgloss.Style) style {
	return func(s string) string { return st.Render(s) }
}

type renderer struct {
	w     io.Writer
	cfg   *config.Config
	width int

	heading, symbol, dim style
}

func newRenderer(w io.Writer, cfg *config.Config) *renderer {
	r := &renderer{
		w:       w,
		cfg:     cfg,
		width:   term.DefaultWidth,
		heading: plain,
		symbol:  plain,
		dim:     plain,
	}

	f, isFile := w.(*os.File)
	if isFile {
		r.width = term.Width(f)
	}

	styled := cfg.Color == config.ColorAlways ||
		(cfg.Color == config.ColorAuto && isFile && term.IsTerminal(f))
	if styled {
		lr := lipgloss.NewRenderer(w)
		if cfg.Color == config.ColorAlways {
			lr.SetColorProfile(termenv.ANSI256)
		}
		r.heading = styleOf(lr.NewStyle().Bold(true).Foreground(colorHeading))
		r.symbol = styleOf(lr.NewStyle().Bold(true).Foreground(colorSymbol))
		r.dim = styleOf(lr.NewStyle().Foreground(colorDim))
	}
	return r
}

// formatValue formats v with the configured precision, using an SI prefix
// where enabled and sensible for unit.
func (r *renderer) formatValue(v float64, unit string) string {
	if r.cfg.SIPrefix && prefixable[unit] && v != 0 {
		if exp := math.Floor(math.Log10(math.Abs(v))); exp >= -24 && exp <= 24 {
			decimals := max(r.cfg.Precision-3, 0)
			return humanize.SIWithDigits(v, decimals, unit)
		}
	}
	s := strconv.FormatFloat(v, 'g', r.cfg.Precision, 64)
	if unit != "" {
		s += " " + unit
	}
	return s
}

// constantView is the serialized form of a constant.
type constantView struct {
	physconst.Constant `yaml:",inline"`

	Group string `json:"group" yaml:"group"`
}

func viewOf(c physconst.Constant) constantView {
	return constantView{Constant: c, Group: c.Group.Key()}
}

func (r *renderer) encode(v any) error {
	switch r.cfg.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(r.w)
		defer enc.Close()
		enc.SetIndent(2)
		return enc.Encode(v)
	}
	return fmt.Errorf("%w %q", config.ErrFormat, r.cfg.Format)
}

// printConstants prints cc. In table format, a heading is printed
// before each group.
func (r *renderer) printConstants(cc []physconst.Constant) error {
	switch r.cfg.Format {
	case config.FormatJSON, config.FormatYAML:
		views := make([]constantView, len(cc))
		for i, c := range cc {
			views[i] = viewOf(c)
		}
		return r.encode(views)
	case config.FormatPlain:
		for _, c := range cc {
			fmt.Fprintf(r.w, "%s\t%s\n", c.Symbol, r.formatValue(c.Value, c.Unit))
		}
		return nil
	}

	rows := make([][3]string, len(cc))
	var widths [3]int
	for i, c := range cc {
		rows[i] = [3]string{c.Symbol, r.formatValue(c.Value, c.Unit), c.Uncertainty.String()}
		for j, cell := range rows[i] {
			widths[j] = max(widths[j], lipgloss.Width(cell))
		}
	}

	descWidth := r.width - 2
	for _, w := range widths {
		descWidth -= w + 2
	}

	var group physconst.Group
	for i, c := range cc {
		if i == 0 || c.Group != group {
			if i > 0 {
				fmt.Fprintln(r.w)
			}
			group = c.Group
			fmt.Fprintln(r.w, r.heading(title.String(group.String())))
		}
		row := rows[i]
		fmt.Fprintf(r.w, "  %s  %s  %s  %s\n",
			r.symbol(pad(row[0], widths[0])),
			pad(row[1], widths[1]),
			r.dim(pad(row[2], widths[2])),
			truncate(c.Description, descWidth),
		)
	}
	return nil
}

// printDetails prints every field of c.
func (r *renderer) printDetails(c physconst.Constant) error {
	switch r.cfg.Format {
	case config.FormatJSON, config.FormatYAML:
		return r.encode(viewOf(c))
	case config.FormatPlain:
		_, err := fmt.Fprintln(r.w, r.formatValue(c.Value, c.Unit))
		return err
	}

	fmt.Fprintf(r.w, "%s  %s\n", r.symbol(c.Symbol), c.Description)
	field := func(name, value string) {
		fmt.Fprintf(r.w, "  %s  %s\n", r.dim(pad(name, 11)), value)
	}
	field("value", r.formatValue(c.Value, c.Unit))
	if c.IsExact() {
		field("uncertainty", "exact")
	} else {
		field("uncertainty", c.Uncertainty.String()+" (relative), "+
			r.formatValue(c.AbsoluteUncertainty(), c.Unit)+" (absolute)")
	}
	if c.Formula != "" {
		field("formula", c.Formula)
	}
	field("group", c.Group.String())
	return nil
}

type conversion struct {
	Value  float64 `json:"value" yaml:"value"`
	From   string  `json:"from" yaml:"from"`
	To     string  `json:"to" yaml:"to"`
	Result float64 `json:"result" yaml:"result"`
}

func (r *renderer) printConversion(cv conversion, fromName, toName string) error {
	switch r.cfg.Format {
	case config.FormatJSON, config.FormatYAML:
		return r.encode(cv)
	case config.FormatPlain:
		_, err := fmt.Fprintln(r.w, r.formatValue(cv.Result, ""))
		return err
	}
	_, err := fmt.Fprintf(r.w, "%s = %s\n",
		r.formatValue(cv.Value, fromName),
		r.symbol(r.formatValue(cv.Result, toName)),
	)
	return err
}

func pad(s string, n int) string {
	if w := lipgloss.Width(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}

func truncate(s string, n int) string {
	if n < 4 || lipgloss.Width(s) <= n {
		return s
	}
	rs := []rune(s)
	if len(rs) > n-1 {
		rs = rs[:n-1]
	}
	return string(rs) + "…"
}
