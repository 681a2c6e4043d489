package telemetry

import (
	"context"
	"errors"
	"testing"

	"typeset/internal/article"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNew_DisabledWithoutEndpoint(t *testing.T) {
	e, err := New(context.Background(), Config{})
	require.NoError(t, err)
	if e != nil {
		t.Fatal("expected nil exporter without endpoint")
	}
	// All methods are no-ops on nil.
	e.RecordApply(context.Background(), "submit", "doc", article.DefaultState, nil)
	assert.NoError(t, e.Shutdown(context.Background()))
}

func TestStateAttributes(t *testing.T) {
	attrs := StateAttributes(article.DefaultState)
	require.Len(t, attrs, len(article.Fields))
	got := map[attribute.Key]string{}
	for _, kv := range attrs {
		got[kv.Key] = kv.Value.AsString()
	}
	assert.Equal(t, article.DefaultState.FontFamily.Value, got["typeset.font_family"])
	assert.Equal(t, article.DefaultState.ContentWidth.Value, got["typeset.content_width"])
}

func TestRecordApply(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	e := newWithProcessor("typeset-test", rec)

	st, err := article.DefaultState.With(article.FieldFontSize, article.FontSizeOptions.At(2))
	require.NoError(t, err)
	e.RecordApply(context.Background(), "submit", "Field Notes", st, nil)
	e.RecordApply(context.Background(), "reset", "Field Notes", article.DefaultState, errors.New("tmux failed"))

	spans := rec.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, SpanApply, spans[0].Name())

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range spans[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "submit", attrs[AttrReason].AsString())
	assert.Equal(t, "Field Notes", attrs[AttrDocument].AsString())
	assert.Equal(t, st.FontSize.Value, attrs["typeset.font_size"].AsString())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)

	assert.Equal(t, codes.Error, spans[1].Status().Code)
	assert.Equal(t, "tmux failed", spans[1].Status().Description)

	require.NoError(t, e.Shutdown(context.Background()))
}
