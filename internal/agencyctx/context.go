package agencyctx

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
)

// AgencyContextKey is the request context key for the active agency ID.
type AgencyContextKey struct{}

// WithAgencyID stores the agency ID in the context.
func WithAgencyID(ctx context.Context, agencyID int64) context.Context {
	return context.WithValue(ctx, AgencyContextKey{}, agencyID)
}

// AgencyIDFromContext returns the agency ID from context, if set.
func AgencyIDFromContext(ctx context.Context) (snowflake.ID, bool) {
	if ctx == nil {
		return 0, false
	}

	value := ctx.Value(AgencyContextKey{})
	if value != nil {
		switch typed := value.(type) {
		case int64:
			return snowflake.ID(typed), true
		case snowflake.ID:
			return typed, true
		case string:
			parsed, err := snowflake.ParseString(strings.TrimSpace(typed))
			if err == nil {
				return parsed, true
			}
		}
	}
	return 0, false
}
