package listbox_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/listbox/internal/listbox"
)

func TestFlatten(t *testing.T) {
	entries := listbox.Flatten([]listbox.Node{
		listbox.Option{Text: "One", Value: "1"},
		listbox.Group{Label: "Evens", DescribedBy: "evens-desc", Options: []listbox.Option{
			{Text: "Two", Value: "2"},
			{Text: "Four", Value: "4"},
		}},
		&listbox.Option{Text: "Three", Value: "3"},
	})

	require.Len(t, entries, 5)
	for i, e := range entries {
		assert.Equal(t, i, e.Position)
	}

	assert.Equal(t, listbox.EntryGroup, entries[1].Kind)
	assert.Equal(t, "Evens", entries[1].Text)
	assert.Equal(t, "evens-desc", entries[1].DescribedBy)
	assert.Equal(t, "Evens", entries[2].Group)
	assert.Empty(t, entries[4].Group)

	assert.Equal(t, []string{"1", "2", "4", "3"}, listbox.OptionValues(entries))
}

func TestContext_ZeroValueIsInert(t *testing.T) {
	var ctx listbox.Context

	assert.NotPanics(t, func() {
		ctx.SetActive("a")
		ctx.UpdateSelected(func([]string) []string { return []string{"a"} })
		ctx.Deregister("a")
	})
	assert.Empty(t, ctx.Active())
	assert.Empty(t, ctx.Selected())
	assert.False(t, ctx.IsMultiselect())

	var nilCtx *listbox.Context
	assert.NotPanics(t, func() { nilCtx.SetActive("a") })
	assert.Empty(t, nilCtx.Active())
}

func TestOptionNode_OutsideListbox(t *testing.T) {
	node := listbox.NewOptionNode(&listbox.Context{}, listbox.Option{Text: "Lonely", Value: "lonely"}, 0)

	assert.NotPanics(t, func() {
		node.Mount()
		node.MouseDown()
		node.Click()
		node.MouseLeave(true)
		node.Unmount()
	})
	assert.Equal(t, listbox.OptionState{}, node.State())

	selected, ok := node.Attributes().Get("aria-selected")
	require.True(t, ok)
	assert.Equal(t, "false", selected)
}

func TestOptionNode_Attributes(t *testing.T) {
	single := newListbox(t, listbox.Config{}, options("a", "b")...)
	press(single, down, enter)

	a, ok := single.OptionNode("a")
	require.True(t, ok)
	attrs := a.Attributes()

	role, _ := attrs.Get("role")
	assert.Equal(t, "option", role)
	selected, _ := attrs.Get("aria-selected")
	assert.Equal(t, "true", selected)
	assert.False(t, attrs.Has("aria-checked"), "single-select never sets aria-checked")
	assert.Equal(t, listbox.OptionState{Active: true, Selected: true}, a.State())

	multi := newListbox(t, listbox.Config{Mode: listbox.ModeMulti}, options("a", "b")...)
	b, ok := multi.OptionNode("b")
	require.True(t, ok)

	checked, _ := b.Attributes().Get("aria-checked")
	assert.Equal(t, "false", checked)
	assert.False(t, b.Attributes().Has("aria-selected"), "multiselect never sets aria-selected")
	assert.True(t, b.State().Multiselect)
}

func TestGroupNode_Attributes(t *testing.T) {
	lb, err := listbox.New(context.Background(), listbox.Config{AriaLabel: "x"},
		listbox.Group{Label: "Fruit", DescribedBy: "fruit-help", Options: []listbox.Option{{Text: "Apple", Value: "apple"}}},
	)
	require.NoError(t, err)

	g := lb.Rows()[0].Group
	require.NotNil(t, g)

	attrs := g.Attributes()
	role, _ := attrs.Get("role")
	assert.Equal(t, "group", role)
	labelledBy, _ := attrs.Get("aria-labelledby")
	assert.Equal(t, g.LabelID(), labelledBy)
	labelID, _ := g.LabelAttributes().Get("id")
	assert.Equal(t, labelledBy, labelID, "the group is labelled by its own rendered label")
	describedBy, _ := attrs.Get("aria-describedby")
	assert.Equal(t, "fruit-help", describedBy)
	assert.NotEqual(t, g.ID(), g.LabelID())
}

func TestAttributes_String(t *testing.T) {
	attrs := listbox.Attributes{}.With("role", "option").With("aria-label", `say "hi"`)
	assert.Equal(t, `role="option" aria-label="say \"hi\""`, attrs.String())
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    listbox.Mode
		wantErr bool
	}{
		{in: "", want: listbox.ModeSingle},
		{in: "single", want: listbox.ModeSingle},
		{in: "Multi", want: listbox.ModeMulti},
		{in: "follow-focus", want: listbox.ModeSingleFollowsFocus},
		{in: "single-follows-focus", want: listbox.ModeSingleFollowsFocus},
		{in: "both", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := listbox.ParseMode(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, listbox.ErrInvalidMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if tt.in != "" {
				again, err := listbox.ParseMode(got.String())
				require.NoError(t, err)
				assert.Equal(t, got, again)
			}
		})
	}
}
