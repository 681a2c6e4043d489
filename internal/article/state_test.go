package article

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultState_IsValid(t *testing.T) {
	require.NoError(t, DefaultState.Validate())
	assert.Equal(t, "Open Sans", DefaultState.FontFamily.Title)
	assert.Equal(t, "18px", DefaultState.FontSize.Value)
	assert.Equal(t, "Black", DefaultState.FontColor.Title)
	assert.Equal(t, "White", DefaultState.BackgroundColor.Title)
	assert.Equal(t, "Wide", DefaultState.ContentWidth.Title)
}

func TestOptionSets_ValuesAreUnique(t *testing.T) {
	for _, f := range Fields {
		set := f.Options()
		require.NotZero(t, set.Len(), "field %s has no options", f)
		seen := make(map[string]bool)
		for _, o := range set.Options {
			if seen[o.Value] {
				t.Errorf("%s: duplicate value %q", f, o.Value)
			}
			seen[o.Value] = true
		}
	}
}

func TestState_With_ReplacesOnlyThatField(t *testing.T) {
	prev := DefaultState
	ubuntu := FontFamilyOptions.Options[1]

	next, err := prev.With(FieldFontFamily, ubuntu)
	require.NoError(t, err)

	assert.Equal(t, ubuntu, next.FontFamily)
	assert.Equal(t, prev.FontSize, next.FontSize)
	assert.Equal(t, prev.FontColor, next.FontColor)
	assert.Equal(t, prev.BackgroundColor, next.BackgroundColor)
	assert.Equal(t, prev.ContentWidth, next.ContentWidth)
	// prev is a value; With must not have touched it.
	assert.Equal(t, FontFamilyOptions.Options[0], prev.FontFamily)
}

func TestState_With_RejectsForeignOption(t *testing.T) {
	// A font color is not a valid background even when the value collides.
	fontPink := FontColors.Options[3]
	_, err := DefaultState.With(FieldBackgroundColor, fontPink)
	if !errors.Is(err, ErrOptionNotInSet) {
		t.Fatalf("expected ErrOptionNotInSet, got %v", err)
	}

	_, err = DefaultState.With(FieldFontSize, Option{Value: "12px", Title: "12px"})
	if !errors.Is(err, ErrOptionNotInSet) {
		t.Errorf("expected ErrOptionNotInSet for unknown size, got %v", err)
	}
}

func TestState_With_LastWriteWinsPerField(t *testing.T) {
	st := DefaultState
	steps := []struct {
		field Field
		opt   Option
	}{
		{FieldFontSize, FontSizeOptions.Options[2]},
		{FieldFontColor, FontColors.Options[4]},
		{FieldFontSize, FontSizeOptions.Options[1]},
		{FieldContentWidth, ContentWidths.Options[1]},
		{FieldFontColor, FontColors.Options[7]},
	}
	for _, s := range steps {
		var err error
		st, err = st.With(s.field, s.opt)
		require.NoError(t, err)
	}

	assert.Equal(t, FontSizeOptions.Options[1], st.FontSize)
	assert.Equal(t, FontColors.Options[7], st.FontColor)
	assert.Equal(t, ContentWidths.Options[1], st.ContentWidth)
	assert.Equal(t, DefaultState.FontFamily, st.FontFamily)
	assert.Equal(t, DefaultState.BackgroundColor, st.BackgroundColor)
}

func TestState_Validate_ZeroStateFails(t *testing.T) {
	err := State{}.Validate()
	assert.ErrorIs(t, err, ErrOptionNotInSet)
}

func TestOptionSet_At_Wraps(t *testing.T) {
	set := FontSizeOptions
	assert.Equal(t, set.Options[0], set.At(3))
	assert.Equal(t, set.Options[2], set.At(-1))
	assert.True(t, OptionSet{}.At(0).IsZero())
}

func TestOptionSet_Lookup(t *testing.T) {
	o, ok := ContentWidths.Lookup("948px")
	require.True(t, ok)
	assert.Equal(t, "Narrow", o.Title)

	_, ok = ContentWidths.Lookup("100%")
	assert.False(t, ok)
}

func TestOption_Pixels(t *testing.T) {
	tests := []struct {
		value string
		want  int
		ok    bool
	}{
		{"18px", 18, true},
		{"1394px", 1394, true},
		{"#FFFFFF", 0, false},
		{"px", 0, false},
		{"-3px", 0, false},
	}
	for _, tt := range tests {
		got, ok := Option{Value: tt.value}.Pixels()
		if got != tt.want || ok != tt.ok {
			t.Errorf("Pixels(%q): expected (%d, %v), got (%d, %v)", tt.value, tt.want, tt.ok, got, ok)
		}
	}
}
