package server

import (
	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	agencydomain "github.com/smallbiznis/rentora/internal/agency/domain"
	"github.com/smallbiznis/rentora/internal/agencyctx"
	authdomain "github.com/smallbiznis/rentora/internal/auth/domain"
	obscontext "github.com/smallbiznis/rentora/internal/observability/context"
)

const (
	contextUserIDKey  = "user_id"
	contextSessionKey = "session"
)

// AuthRequired authenticates the session cookie and stores the user and
// session on the request for downstream handlers.
func (s *Server) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := s.sessions.ReadToken(c)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		session, err := s.authsvc.Authenticate(c.Request.Context(), token)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(contextUserIDKey, session.UserID.String())
		c.Set(contextSessionKey, session)
		c.Next()
	}
}

// AgencyContext resolves the caller's active agency and injects it into the
// request context. Every /api query is scoped by this agency id.
func (s *Server) AgencyContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessionFromContext(c)
		if session == nil {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		agencyID, ok := s.resolveActiveAgency(c, session)
		if !ok {
			AbortWithError(c, agencydomain.ErrForbidden)
			return
		}

		ctx := agencyctx.WithAgencyID(c.Request.Context(), int64(agencyID))
		ctx = obscontext.WithAgencyID(ctx, agencyID.String())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// resolveActiveAgency prefers the agency pinned on the session, as long as
// the membership still exists, and otherwise falls back to the caller's
// oldest membership and pins it for the next request.
func (s *Server) resolveActiveAgency(c *gin.Context, session *authdomain.Session) (snowflake.ID, bool) {
	ctx := c.Request.Context()

	if session.ActiveAgencyID != nil {
		agencyID := snowflake.ID(*session.ActiveAgencyID)
		member, err := s.agencyMember(c, agencyID, session.UserID)
		if err == nil && member != nil {
			return agencyID, true
		}
	}

	var member agencydomain.AgencyMember
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", session.UserID).
		Order("created_at asc, id asc").
		First(&member).Error; err != nil {
		return 0, false
	}

	active := int64(member.AgencyID)
	_ = s.authsvc.UpdateSessionAgencyContext(ctx, session.ID, &active, []int64{active})

	return member.AgencyID, true
}

// RequireRole allows the request through when the caller holds one of the
// given roles in the active agency.
func (s *Server) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := s.userIDFromSession(c)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		agencyID, ok := agencyctx.AgencyIDFromContext(c.Request.Context())
		if !ok {
			AbortWithError(c, agencydomain.ErrForbidden)
			return
		}

		member, err := s.agencyMember(c, agencyID, userID)
		if err != nil || member == nil {
			AbortWithError(c, agencydomain.ErrForbidden)
			return
		}

		for _, role := range roles {
			if member.Role == role {
				c.Next()
				return
			}
		}

		AbortWithError(c, agencydomain.ErrForbidden)
	}
}

func (s *Server) agencyMember(c *gin.Context, agencyID, userID snowflake.ID) (*agencydomain.AgencyMember, error) {
	var member agencydomain.AgencyMember
	if err := s.db.WithContext(c.Request.Context()).
		Where("agency_id = ? AND user_id = ?", agencyID, userID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func sessionFromContext(c *gin.Context) *authdomain.Session {
	value, ok := c.Get(contextSessionKey)
	if !ok {
		return nil
	}
	session, ok := value.(*authdomain.Session)
	if !ok {
		return nil
	}
	return session
}

func (s *Server) userIDFromSession(c *gin.Context) (snowflake.ID, bool) {
	raw := c.GetString(contextUserIDKey)
	if raw == "" {
		return 0, false
	}
	parsed, err := snowflake.ParseString(raw)
	if err != nil || parsed == 0 {
		return 0, false
	}
	return parsed, true
}
