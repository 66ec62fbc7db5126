package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.yaml.in/yaml/v3"
)

var (
	colorError   = lipgloss.Color("#EF4444")
	colorSuccess = lipgloss.Color("#10B981")
	colorMuted   = lipgloss.Color("#6B7280")
	colorPrimary = lipgloss.Color("#7C3AED")

	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	keyStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	titleStyle   = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
)

func printError(err error) {
	fmt.Fprint(os.Stderr, errorStyle.Render("✗ "))
	fmt.Fprintln(os.Stderr, err)
}

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprint(w, successStyle.Render("✓ "))
	fmt.Fprintf(w, format+"\n", args...)
}

// render prints v as JSON, YAML or a styled listing depending on the global flags.
func render(w io.Writer, title string, v any) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	body, err := toBlockYAML(v)
	if err != nil {
		return err
	}
	if yamlOutput {
		_, err := w.Write(body)
		return err
	}

	fmt.Fprintln(w, titleStyle.Render(title))
	for _, line := range strings.Split(strings.TrimRight(string(body), "\n"), "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			fmt.Fprintln(w, line)
			continue
		}
		fmt.Fprintln(w, keyStyle.Render(key+":")+value)
	}
	return nil
}

// toBlockYAML renders v as block YAML keyed and ordered by its JSON field names.
func toBlockYAML(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	clearStyle(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// clearStyle drops the flow/quoted styles JSON input leaves on every node.
func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearStyle(c)
	}
}
