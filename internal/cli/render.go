package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	lifebeyond "github.com/Devanik21/Life-Beyond-sub000"
)

// RunRender builds one chart and writes it through the selected render
// surface, to a file or to stdout.
func RunRender(opts Options, chartID string) error {
	overrides, err := parseOverrides(opts.Set)
	if err != nil {
		return err
	}

	m, err := openMuseum(opts)
	if err != nil {
		return err
	}

	renderer, err := lifebeyond.RendererFor(opts.Format)
	if err != nil {
		return err
	}

	spec, err := m.BuildChart(chartID, overrides)
	if err != nil {
		return err
	}

	data, err := renderer.Render(&spec)
	if err != nil {
		return fmt.Errorf("render %q: %w", chartID, err)
	}

	if opts.Out == "" || opts.Out == "-" {
		if renderer.Format() == "png" {
			return fmt.Errorf("refusing to write PNG bytes to a terminal, use --out")
		}
		_, _ = os.Stdout.Write(data)
		if len(data) > 0 && data[len(data)-1] != '\n' {
			fmt.Println()
		}
		return nil
	}

	if err := os.WriteFile(opts.Out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.Out, err)
	}
	printSystemMessage("Wrote %s (%d bytes).", opts.Out, len(data))
	return nil
}

// parseOverrides turns repeated key=value flags into a parameter map. Values
// are coerced to the most specific scalar type, matching what the YAML
// frontmatter would have produced for the same literal.
func parseOverrides(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	overrides := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, val, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("malformed override %q (want key=value)", pair)
		}
		overrides[key] = coerceScalar(val)
	}
	return overrides, nil
}

func coerceScalar(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
