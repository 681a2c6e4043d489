// Package telemetry exports one OpenTelemetry span per applied configuration.
package telemetry

import (
	"context"
	"fmt"
	"strings"

	"typeset/internal/article"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// SpanApply is the name of the span recorded for each apply.
const SpanApply = "typeset.apply"

// Attribute keys set on apply spans.
const (
	AttrReason   = attribute.Key("typeset.apply.reason")
	AttrDocument = attribute.Key("typeset.document")
)

// Exporter records apply spans. A nil *Exporter is valid and records nothing.
type Exporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// Config selects the OTLP/HTTP endpoint (host:port or URL) and service name.
type Config struct {
	Endpoint    string
	ServiceName string
	Insecure    bool
}

// New creates an exporter for cfg. Returns nil when no endpoint is configured.
func New(ctx context.Context, cfg Config) (*Exporter, error) {
	if cfg.Endpoint == "" {
		return nil, nil
	}
	var opts []otlptracehttp.Option
	if strings.Contains(cfg.Endpoint, "://") {
		// Full URLs (as OTEL_EXPORTER_OTLP_ENDPOINT usually holds) carry their own scheme.
		opts = append(opts, otlptracehttp.WithEndpointURL(cfg.Endpoint))
	} else {
		opts = append(opts, otlptracehttp.WithEndpoint(cfg.Endpoint))
		if cfg.Insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
	}
	exp, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("otlp exporter: %w", err)
	}
	return newWithProcessor(cfg.ServiceName, sdktrace.NewBatchSpanProcessor(exp)), nil
}

// newWithProcessor builds an exporter around an arbitrary span processor.
func newWithProcessor(serviceName string, sp sdktrace.SpanProcessor) *Exporter {
	if serviceName == "" {
		serviceName = "typeset"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sp),
		sdktrace.WithResource(res),
	)
	return &Exporter{
		provider: provider,
		tracer:   provider.Tracer("typeset/panel"),
	}
}

// fieldKeys names the per-field span attributes.
var fieldKeys = map[article.Field]attribute.Key{
	article.FieldFontFamily:      "typeset.font_family",
	article.FieldFontSize:        "typeset.font_size",
	article.FieldFontColor:       "typeset.font_color",
	article.FieldBackgroundColor: "typeset.background_color",
	article.FieldContentWidth:    "typeset.content_width",
}

// StateAttributes maps a configuration to span attributes, one per field.
func StateAttributes(st article.State) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(article.Fields))
	for _, f := range article.Fields {
		attrs = append(attrs, fieldKeys[f].String(st.Get(f).Value))
	}
	return attrs
}

// RecordApply records a finished apply. err, if any, marks the span failed.
func (e *Exporter) RecordApply(ctx context.Context, reason, document string, st article.State, err error) {
	if e == nil {
		return
	}
	attrs := append([]attribute.KeyValue{
		AttrReason.String(reason),
		AttrDocument.String(document),
	}, StateAttributes(st)...)
	_, span := e.tracer.Start(ctx, SpanApply, oteltrace.WithAttributes(attrs...))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// Shutdown flushes pending spans.
func (e *Exporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	if err := e.provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("telemetry shutdown: %w", err)
	}
	return nil
}
