package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rshade/listbox/internal/config"
	"github.com/rshade/listbox/internal/listbox"
)

// Accessible names used when neither flags nor documents provide one.
const (
	defaultSingleLabel = "Select an option"
	defaultMultiLabel  = "Select options"
)

// listboxFlags are shared by commands that build a listbox.
type listboxFlags struct {
	multi       bool
	followFocus bool
	label       string
	labelledBy  string
	describedBy string
	values      []string
}

func (f *listboxFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.multi, "multi", false, "allow selecting several options")
	cmd.Flags().BoolVar(&f.followFocus, "follow-focus", false, "select the active option while navigating")
	cmd.Flags().StringVar(&f.label, "label", "", "accessible label (defaults to the document label)")
	cmd.Flags().StringVar(&f.labelledBy, "labelledby", "", "id of the element labelling the listbox")
	cmd.Flags().StringVar(&f.describedBy, "describedby", "", "id of the element describing the listbox")
	cmd.Flags().StringArrayVar(&f.values, "value", nil, "initially selected option value (repeatable)")
	cmd.MarkFlagsMutuallyExclusive("multi", "follow-focus")
	cmd.MarkFlagsMutuallyExclusive("label", "labelledby")
}

// mode resolves the selection mode; flags override the config.
func (f *listboxFlags) mode(cfg *config.Config) (listbox.Mode, error) {
	switch {
	case f.multi:
		return listbox.ModeMulti, nil
	case f.followFocus:
		return listbox.ModeSingleFollowsFocus, nil
	default:
		return cfg.Listbox.ParseMode()
	}
}

// listboxConfig builds the container configuration for doc.
func (f *listboxFlags) listboxConfig(cfg *config.Config, doc *config.Document) (listbox.Config, error) {
	mode, err := f.mode(cfg)
	if err != nil {
		return listbox.Config{}, err
	}

	lc := listbox.Config{
		AriaLabel:       f.label,
		AriaLabelledBy:  f.labelledBy,
		AriaDescribedBy: f.describedBy,
		Mode:            mode,
		DefaultValue:    f.values,
		Virtualized:     cfg.Listbox.Virtualized,
	}
	if lc.AriaLabel == "" && lc.AriaLabelledBy == "" {
		lc.AriaLabel = doc.Label
	}
	if lc.AriaLabel == "" && lc.AriaLabelledBy == "" {
		lc.AriaLabel = defaultSingleLabel
		if mode.Multiselect() {
			lc.AriaLabel = defaultMultiLabel
		}
	}
	return lc, nil
}

// loadOptions reads option documents from paths, or option lines from
// stdin when there are no paths or the only path is "-".
func loadOptions(ctx context.Context, stdin io.Reader, paths []string) (*config.Document, []listbox.Node, error) {
	var doc *config.Document
	if len(paths) == 0 || (len(paths) == 1 && paths[0] == "-") {
		parsed, err := config.ParseLines(stdin)
		if err != nil {
			return nil, nil, fmt.Errorf("loading options: %w", err)
		}
		doc = parsed
	} else {
		docs, err := config.LoadDocuments(ctx, paths)
		if err != nil {
			return nil, nil, fmt.Errorf("loading options: %w", err)
		}
		doc = config.MergeDocuments(docs...)
	}

	nodes, err := doc.Nodes()
	if err != nil {
		return nil, nil, fmt.Errorf("loading options: %w", err)
	}
	if len(nodes) == 0 {
		return nil, nil, ErrNoOptions
	}
	return doc, nodes, nil
}

// optionTexts maps option values to their text.
func optionTexts(entries []listbox.Entry) map[string]string {
	texts := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.Kind == listbox.EntryOption {
			texts[e.Value] = e.Text
		}
	}
	return texts
}
