package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvnum/internal/config"
	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/scenario"
	"github.com/katalvlaran/lvnum/vector"
)

// render writes v to w in the requested format; text uses the lazily built
// human-readable form.
func render(w io.Writer, format string, v any, text func() string) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case config.OutputText, "":
		_, err := io.WriteString(w, text())
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// num prints v with up to 12 significant digits, hiding representation noise
// such as 0.09000000000000001.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', 12, 64)
}

func bernoulliText(r *scenario.BernoulliResult) string {
	var sb strings.Builder
	fmt.Fprintln(&sb, r.Dist)
	fmt.Fprintf(&sb, "pmf(%s) = %s\n", num(r.At), num(r.PMF))
	fmt.Fprintf(&sb, "mean   = %s\n", num(r.Mean))
	fmt.Fprintf(&sb, "var    = %s\n", num(r.Var))
	fmt.Fprintf(&sb, "sd     = %s\n", num(r.SD))

	return sb.String()
}

func zipText(r *scenario.ZipResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "a        = %s\n", vector.Format(r.A))
	fmt.Fprintf(&sb, "b        = %s\n", vector.Format(r.B))
	fmt.Fprintf(&sb, "zip_with = %s\n", vector.Format(r.ZipWith))
	fmt.Fprintf(&sb, "add      = %s\n", vector.Format(r.Add))
	fmt.Fprintf(&sb, "match    = %t\n", r.Match)

	return sb.String()
}

func transposeText(r *scenario.TransposeResult) string {
	var sb strings.Builder
	for _, part := range []struct {
		name string
		view scenario.MatrixView
	}{
		{"input", r.Input},
		{"transposed", r.Transposed},
		{"expected", r.Expected},
	} {
		fmt.Fprintf(&sb, "%s (%dx%d, %s):\n", part.name, part.view.Rows, part.view.Cols, part.view.Layout)
		m, err := part.view.Dense()
		if err != nil {
			fmt.Fprintf(&sb, "  <%v>\n", err)
			continue
		}
		fmt.Fprintln(&sb, matrix.Format(m))
	}
	fmt.Fprintf(&sb, "match = %t\n", r.Match)

	return sb.String()
}

func checkText(r *scenario.CheckReport) string {
	var sb strings.Builder
	for _, name := range r.Passed {
		fmt.Fprintf(&sb, "PASS %s\n", name)
	}
	for _, name := range r.Failed {
		fmt.Fprintf(&sb, "FAIL %s\n", name)
	}
	if r.Bernoulli != nil {
		fmt.Fprintf(&sb, "\n%s", bernoulliText(r.Bernoulli))
	}
	if r.Zip != nil {
		fmt.Fprintf(&sb, "\n%s", zipText(r.Zip))
	}
	if r.Transpose != nil {
		fmt.Fprintf(&sb, "\n%s", transposeText(r.Transpose))
	}

	return sb.String()
}
