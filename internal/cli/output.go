package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rshade/listbox/internal/config"
)

// selectedOption is one selected option in structured output.
type selectedOption struct {
	Value string `json:"value" yaml:"value"`
	Text  string `json:"text,omitempty" yaml:"text,omitempty"`
}

// writeSelection prints the selection in format. Values that no longer
// name an option are printed without text.
func writeSelection(w io.Writer, format string, selected []string, texts map[string]string) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(selectedOptions(selected, texts))
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(selectedOptions(selected, texts)); err != nil {
			return fmt.Errorf("encoding selection: %w", err)
		}
		return enc.Close()
	default:
		for _, value := range selected {
			if _, err := fmt.Fprintln(w, value); err != nil {
				return err
			}
		}
		return nil
	}
}

func selectedOptions(selected []string, texts map[string]string) []selectedOption {
	out := make([]selectedOption, 0, len(selected))
	for _, value := range selected {
		out = append(out, selectedOption{Value: value, Text: texts[value]})
	}
	return out
}
