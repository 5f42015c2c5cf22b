package context

import "context"

type contextKey string

const (
	requestIDKey contextKey = "observability_request_id"
	agencyIDKey  contextKey = "observability_agency_id"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(requestIDKey).(string)
	return value
}

func WithAgencyID(ctx context.Context, agencyID string) context.Context {
	if ctx == nil || agencyID == "" {
		return ctx
	}
	return context.WithValue(ctx, agencyIDKey, agencyID)
}

func AgencyIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(agencyIDKey).(string)
	return value
}
