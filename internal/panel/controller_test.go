package panel

import (
	"errors"
	"testing"

	"typeset/internal/article"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures apply callbacks.
type recorder struct {
	calls []article.State
}

func (r *recorder) apply(st article.State) {
	r.calls = append(r.calls, st)
}

func TestController_InitialState(t *testing.T) {
	c := NewController(nil)
	if c.IsOpen() {
		t.Error("expected controller to start closed")
	}
	if c.Visibility() != Closed {
		t.Errorf("expected Closed, got %s", c.Visibility())
	}
	if c.Pending() != article.DefaultState {
		t.Errorf("expected default pending state, got %+v", c.Pending())
	}
}

func TestController_ToggleParity(t *testing.T) {
	c := NewController(nil)
	for i := 1; i <= 7; i++ {
		c.Toggle()
		want := Closed
		if i%2 == 1 {
			want = Open
		}
		if c.Visibility() != want {
			t.Errorf("after %d toggles: expected %s, got %s", i, want, c.Visibility())
		}
	}
}

func TestController_CloseIsIdempotent(t *testing.T) {
	c := NewController(nil)
	c.Close()
	if c.IsOpen() {
		t.Error("Close on closed controller should leave it closed")
	}
	c.Toggle()
	c.Close()
	c.Close()
	if c.IsOpen() {
		t.Error("expected closed after Close")
	}
}

func TestController_SetField(t *testing.T) {
	rec := &recorder{}
	c := NewController(rec.apply)

	require.NoError(t, c.SetField(article.FieldFontColor, article.FontColors.Options[2]))
	require.NoError(t, c.SetField(article.FieldContentWidth, article.ContentWidths.Options[1]))
	require.NoError(t, c.SetField(article.FieldFontColor, article.FontColors.Options[5]))

	got := c.Pending()
	assert.Equal(t, article.FontColors.Options[5], got.FontColor)
	assert.Equal(t, article.ContentWidths.Options[1], got.ContentWidth)
	assert.Equal(t, article.DefaultState.FontFamily, got.FontFamily)
	assert.Equal(t, article.DefaultState.FontSize, got.FontSize)
	assert.Equal(t, article.DefaultState.BackgroundColor, got.BackgroundColor)
	assert.Empty(t, rec.calls, "SetField must not apply")
}

func TestController_SetField_RejectsInvalid(t *testing.T) {
	c := NewController(nil)
	before := c.Pending()
	err := c.SetField(article.FieldFontFamily, article.Option{Value: "Comic Sans"})
	if !errors.Is(err, article.ErrOptionNotInSet) {
		t.Fatalf("expected ErrOptionNotInSet, got %v", err)
	}
	if c.Pending() != before {
		t.Error("rejected SetField must not change pending state")
	}
}

func TestController_SubmitAppliesCurrentPending(t *testing.T) {
	rec := &recorder{}
	c := NewController(rec.apply)
	c.Toggle()

	require.NoError(t, c.SetField(article.FieldFontSize, article.FontSizeOptions.Options[1]))
	c.Submit()

	require.Len(t, rec.calls, 1)
	assert.Equal(t, c.Pending(), rec.calls[0])
	assert.Equal(t, article.FontSizeOptions.Options[1], rec.calls[0].FontSize)
	assert.True(t, c.IsOpen(), "Submit must not change visibility")

	// A later edit is reflected in the next submit, not the old snapshot.
	require.NoError(t, c.SetField(article.FieldFontSize, article.FontSizeOptions.Options[2]))
	c.Submit()
	require.Len(t, rec.calls, 2)
	assert.Equal(t, article.FontSizeOptions.Options[2], rec.calls[1].FontSize)
}

func TestController_ResetAppliesDefaultOnce(t *testing.T) {
	rec := &recorder{}
	c := NewController(rec.apply)
	require.NoError(t, c.SetField(article.FieldBackgroundColor, article.BackgroundColors.Options[1]))
	require.NoError(t, c.SetField(article.FieldFontFamily, article.FontFamilyOptions.Options[2]))

	c.Reset()

	assert.Equal(t, article.DefaultState, c.Pending())
	require.Len(t, rec.calls, 1)
	assert.Equal(t, article.DefaultState, rec.calls[0])
}

func TestController_NilApplyIsSafe(t *testing.T) {
	c := NewController(nil)
	c.Submit()
	c.Reset()
}
