package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/gookit/color"
	"github.com/kballard/go-shellquote"
	"github.com/specialistvlad/rteopts/internal/macroscan"
	"github.com/specialistvlad/rteopts/internal/option"
	"github.com/specialistvlad/rteopts/internal/resolver"
)

// Format selects the output encoding.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
)

// ParseFormat validates a format name given on the command line.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, JSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format '%s': must be 'text' or 'json'", s)
}

// Unchanged is printed for options that keep their current value.
const Unchanged = "(unchanged)"

// Writer renders reports onto an io.Writer.
type Writer struct {
	w      io.Writer
	format Format
	color  bool
}

// New creates a Writer. Colors only apply to the text format.
func New(w io.Writer, format Format, colored bool) *Writer {
	return &Writer{w: w, format: format, color: colored && format == Text}
}

func (r *Writer) style(s string, opts ...color.Color) string {
	if !r.color {
		return s
	}
	return color.New(opts...).Sprint(s)
}

func (r *Writer) writeJSON(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Results renders the option plan of each resolved configuration.
func (r *Writer) Results(results []resolver.Result) error {
	if r.format == JSON {
		if results == nil {
			results = []resolver.Result{}
		}
		return r.writeJSON(results)
	}

	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(r.w)
		}
		fmt.Fprintf(r.w, "%s %s\n", r.style("Configuration", color.OpBold), r.style(res.Configuration, color.FgCyan, color.OpBold))
		fmt.Fprintf(r.w, "  toolchain: %s (%s, strategy %s)\n", res.Toolchain, res.Generation, res.Strategy)
		fmt.Fprintf(r.w, "  Toptions:  %s\n", res.RteOptions["Toptions"])

		if len(res.Options) == 0 {
			fmt.Fprintf(r.w, "  %s\n", r.style("no known options", color.FgDarkGray))
			continue
		}

		tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
		for _, o := range res.Options {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", o.ID, r.style(o.Kind.String(), color.FgGreen), r.value(o))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func (r *Writer) value(o option.Resolved) string {
	if s, ok := o.Value.Scalar(); ok {
		return s
	}
	items, isList := o.Value.List()
	if !isList && !o.Clear {
		return r.style(Unchanged, color.FgDarkGray)
	}
	// A cleared option without a replacement ends up empty.
	out := shellquote.Join(items...)
	if out == "" {
		out = "[]"
	}
	if o.Clear {
		out = r.style("[clear]", color.FgYellow) + " " + out
	}
	return out
}

type scanReport struct {
	File    string            `json:"file"`
	Matches []macroscan.Match `json:"matches"`
}

// Matches renders the definitions found in one scanned file.
func (r *Writer) Matches(file string, matches []macroscan.Match) error {
	if r.format == JSON {
		if matches == nil {
			matches = []macroscan.Match{}
		}
		return r.writeJSON(scanReport{File: file, Matches: matches})
	}

	for _, m := range matches {
		fmt.Fprintf(r.w, "%s:%d:%d: %s %s\n", file, m.Line, m.Offset, r.style(m.Name, color.FgCyan), m.Value)
	}
	return nil
}

type classifierEntry struct {
	ID   string      `json:"id"`
	Kind option.Kind `json:"kind"`
}

// Classifier renders the identifier to kind table.
func (r *Writer) Classifier(ids []string) error {
	entries := make([]classifierEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, classifierEntry{ID: id, Kind: option.Classify(id)})
	}
	if r.format == JSON {
		return r.writeJSON(entries)
	}

	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\n", e.ID, e.Kind)
	}
	return tw.Flush()
}
