package inspect

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// FormatOutput writes an inspection response in the requested format
func FormatOutput(w io.Writer, response *Response, format string) error {
	switch format {
	case "json":
		return formatJSON(w, response)
	case "yaml":
		return formatYAML(w, response)
	case "table":
		return formatTable(w, response)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// formatTable formats the response as a two-column table
func formatTable(w io.Writer, response *Response) error {
	fmt.Fprintf(w, "%s %s: %s\n\n", response.What, response.Input, response.Summary)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "FIELD\tVALUE\n")
	fmt.Fprintf(tw, "-----\t-----\n")
	for _, field := range response.Fields {
		fmt.Fprintf(tw, "%s\t%s\n", field.Name, field.Value)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if !response.Valid {
		fmt.Fprintf(w, "\nINVALID: %s\n", response.Violation)
	}
	return nil
}

// formatJSON formats the response as JSON
func formatJSON(w io.Writer, response *Response) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(response)
}

// formatYAML formats the response as YAML
func formatYAML(w io.Writer, response *Response) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	encoder.SetIndent(2)
	return encoder.Encode(response)
}
