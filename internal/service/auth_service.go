package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wallet-admin-console/internal/core/domain"
	"wallet-admin-console/internal/core/ports"
	"wallet-admin-console/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AuthServiceImpl implements ports.AuthService.
type AuthServiceImpl struct {
	backend    ports.AuthBackend
	sessions   ports.SessionStore
	sealer     ports.TokenSealer
	tokenSvc   ports.TokenService
	accessTTL  time.Duration
	sessionTTL time.Duration
	now        func() time.Time
	log        zerolog.Logger
}

// NewAuthService creates a new AuthServiceImpl. accessTTL is how long an
// upstream access token is trusted before it is refreshed.
func NewAuthService(
	backend ports.AuthBackend,
	sessions ports.SessionStore,
	sealer ports.TokenSealer,
	tokenSvc ports.TokenService,
	accessTTL time.Duration,
	sessionTTL time.Duration,
	log zerolog.Logger,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		backend:    backend,
		sessions:   sessions,
		sealer:     sealer,
		tokenSvc:   tokenSvc,
		accessTTL:  accessTTL,
		sessionTTL: sessionTTL,
		now:        time.Now,
		log:        log,
	}
}

// Login signs in against the upstream and opens a console session.
// Only super admins get a session.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperror.Validation("Email and password are required")
	}

	res, err := s.backend.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if res.Role != domain.RoleSuperAdmin {
		s.log.Warn().Int64("user_id", res.UserID).Str("role", res.Role).Msg("console login refused: not a super admin")
		return nil, apperror.ErrNotSuperAdmin()
	}

	accessSealed, err := s.sealer.Seal(res.AccessToken)
	if err != nil {
		return nil, apperror.ErrSealFailure(err)
	}
	refreshSealed, err := s.sealer.Seal(res.RefreshToken)
	if err != nil {
		return nil, apperror.ErrSealFailure(err)
	}

	now := s.now().UTC()
	session := &domain.Session{
		ID:                 uuid.New(),
		UserID:             res.UserID,
		Name:               res.Username,
		Email:              res.Email,
		Role:               res.Role,
		Country:            res.Country,
		AccessTokenSealed:  accessSealed,
		RefreshTokenSealed: refreshSealed,
		AccessExpiresAt:    now.Add(s.accessTTL),
		DisplayCurrency:    domain.BaseCurrency,
		CreatedAt:          now,
	}
	if err := s.sessions.Save(ctx, session, s.sessionTTL); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save session: %w", err))
	}

	token, expiresAt, err := s.tokenSvc.Generate(session.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	s.log.Info().Int64("user_id", session.UserID).Str("session_id", session.ID.String()).Msg("admin signed in")

	return &ports.LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		Session:   session,
	}, nil
}

// Logout ends the session. Unknown sessions are ignored.
func (s *AuthServiceImpl) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return apperror.InternalError(fmt.Errorf("delete session: %w", err))
	}
	return nil
}

// Resolve returns the session with a usable upstream access token.
// An expired access token is refreshed once; if the upstream rejects the
// refresh the session is ended and AUTH_003 is returned.
func (s *AuthServiceImpl) Resolve(ctx context.Context, sessionID uuid.UUID) (*ports.ResolvedSession, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get session: %w", err))
	}
	if session == nil {
		return nil, apperror.ErrSessionExpired()
	}

	if !session.AccessExpired(s.now()) {
		access, err := s.sealer.Open(session.AccessTokenSealed)
		if err != nil {
			return nil, s.endCorrupt(ctx, session, err)
		}
		return &ports.ResolvedSession{Session: session, AccessToken: access}, nil
	}

	refresh, err := s.sealer.Open(session.RefreshTokenSealed)
	if err != nil {
		return nil, s.endCorrupt(ctx, session, err)
	}

	pair, err := s.backend.Refresh(ctx, refresh)
	if err != nil {
		if apperror.HasCode(err, "AUTH_003") {
			s.log.Info().Str("session_id", session.ID.String()).Msg("upstream refresh rejected, ending session")
			s.deleteQuietly(ctx, session.ID)
		}
		return nil, err
	}

	nextRefresh := pair.RefreshToken
	if nextRefresh == "" {
		nextRefresh = refresh
	}
	accessSealed, err := s.sealer.Seal(pair.AccessToken)
	if err != nil {
		return nil, apperror.ErrSealFailure(err)
	}
	refreshSealed, err := s.sealer.Seal(nextRefresh)
	if err != nil {
		return nil, apperror.ErrSealFailure(err)
	}

	session.AccessTokenSealed = accessSealed
	session.RefreshTokenSealed = refreshSealed
	session.AccessExpiresAt = s.now().UTC().Add(s.accessTTL)

	// ttl 0 keeps the session's original expiry
	if err := s.sessions.Save(ctx, session, 0); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save refreshed session: %w", err))
	}

	s.log.Debug().Str("session_id", session.ID.String()).Msg("upstream access token refreshed")

	return &ports.ResolvedSession{Session: session, AccessToken: pair.AccessToken}, nil
}

// endCorrupt drops a session whose sealed tokens cannot be opened,
// typically after a seal key rotation.
func (s *AuthServiceImpl) endCorrupt(ctx context.Context, session *domain.Session, err error) error {
	s.log.Warn().Err(err).Str("session_id", session.ID.String()).Msg("cannot open sealed upstream token")
	s.deleteQuietly(ctx, session.ID)
	return apperror.ErrSessionExpired()
}

func (s *AuthServiceImpl) deleteQuietly(ctx context.Context, id uuid.UUID) {
	if err := s.sessions.Delete(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("session_id", id.String()).Msg("failed to delete session")
	}
}
