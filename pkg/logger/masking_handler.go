package logger

import (
	"context"
	"log/slog"
	"strings"
)

// maskNeedles mark an attribute as sensitive when its key contains one of
// them. Substring matching catches derived keys such as "bot_token" or
// "redis_password".
var maskNeedles = []string{
	"token",
	"password",
	"secret",
	"api_key",
	"dsn",
	"authorization",
}

const maskedValue = "[masked]"

// MaskingHandler hides credential-bearing attributes before records reach
// any sink, including Sentry.
type MaskingHandler struct {
	next slog.Handler
}

// NewMaskingHandler wraps next with attribute masking.
func NewMaskingHandler(next slog.Handler) *MaskingHandler {
	return &MaskingHandler{next: next}
}

func (h *MaskingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// WithAttrs masks the pre-bound attributes too; they end up in every
// record the derived logger emits.
func (h *MaskingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	masked := make([]slog.Attr, len(attrs))
	for i, attr := range attrs {
		masked[i] = maskAttr(attr)
	}
	return &MaskingHandler{next: h.next.WithAttrs(masked)}
}

func (h *MaskingHandler) WithGroup(name string) slog.Handler {
	return &MaskingHandler{next: h.next.WithGroup(name)}
}

func (h *MaskingHandler) Handle(ctx context.Context, record slog.Record) error {
	clean := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(attr slog.Attr) bool {
		clean.AddAttrs(maskAttr(attr))
		return true
	})
	return h.next.Handle(ctx, clean)
}

func maskAttr(attr slog.Attr) slog.Attr {
	key := strings.ToLower(attr.Key)
	for _, needle := range maskNeedles {
		if strings.Contains(key, needle) {
			attr.Value = slog.StringValue(maskedValue)
			break
		}
	}
	return attr
}
