package credential

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/crypto/argon2"

	"github.com/astralfront/supremacy/internal/actor"
	"github.com/astralfront/supremacy/internal/dependencies/clock"
	"github.com/astralfront/supremacy/internal/dependencies/random"
	"github.com/astralfront/supremacy/internal/model"
	"github.com/astralfront/supremacy/internal/services/identity"
	"github.com/astralfront/supremacy/internal/storage"
)

// Durable fields of a credential actor. Token grants are stored under
// client-scoped fields so each client's pair rotates independently.
const (
	fieldRecord = "record"
	fieldOwner  = "owner"
)

func accessField(clientID model.ClientID) string {
	return "access:" + string(clientID)
}

func refreshField(clientID model.ClientID) string {
	return "refresh:" + string(clientID)
}

// owner links a credential actor back to the user it belongs to
type owner struct {
	UserID   model.UserID `json:"userId"`
	Username string       `json:"username"`
}

// Config holds credential service settings
type Config struct {
	// Token lifetimes. Access tokens are short-lived; refresh tokens
	// outlive them by orders of magnitude.
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	// Argon2id parameters
	ArgonTime    uint32
	ArgonMemory  uint32
	ArgonThreads uint8
	KeyLength    uint32
	SaltLength   int
}

// DefaultConfig returns default credential configuration
func DefaultConfig() Config {
	return Config{
		AccessTTL:    6 * time.Hour,
		RefreshTTL:   14 * 24 * time.Hour,
		ArgonTime:    1,
		ArgonMemory:  64 * 1024,
		ArgonThreads: 4,
		KeyLength:    32,
		SaltLength:   16,
	}
}

// Service owns credential actors: one per user, holding the salted
// password hash and one access/refresh grant per connected client.
// Because each actor's operations serialize, concurrent logins or
// refreshes for the same user need no further locking; distinct users
// never contend.
type Service struct {
	runtime  *actor.Runtime
	store    storage.Store
	identity *identity.Service
	clock    clock.Clock
	random   random.Random
	cfg      Config
	logger   *slog.Logger
}

// New creates a new credential service
func New(
	runtime *actor.Runtime,
	store storage.Store,
	identitySvc *identity.Service,
	clk clock.Clock,
	rnd random.Random,
	cfg Config,
	logger *slog.Logger,
) *Service {
	if cfg.AccessTTL == 0 {
		cfg = DefaultConfig()
	}
	return &Service{
		runtime:  runtime,
		store:    store,
		identity: identitySvc,
		clock:    clk,
		random:   rnd,
		cfg:      cfg,
		logger:   logger,
	}
}

// Key derives the credential actor key for a user
func (s *Service) Key(userID model.UserID) actor.Key {
	return actor.KeyFor(actor.KindCredential, string(userID))
}

// Signup registers a new user and issues their first token pair.
//
// The existence check lives in the identity actor; identity and
// credential writes are not transactional. If an earlier signup crashed
// after the identity write, the username exists with no credential
// record, and a repeated signup heals it instead of conflicting.
func (s *Service) Signup(ctx context.Context, username, password string, clientID model.ClientID) (*model.TokenPair, error) {
	user, err := s.identity.Signup(ctx, username)
	if errors.Is(err, model.ErrUserExists) {
		existing, getErr := s.identity.Get(ctx, username)
		if getErr != nil {
			return nil, getErr
		}
		if s.hasRecord(ctx, existing.ID) {
			return nil, model.ErrUserExists
		}
		user = existing
	} else if err != nil {
		return nil, err
	}

	key := s.Key(user.ID)

	var pair model.TokenPair
	err = s.runtime.Do(ctx, key, func(ctx context.Context) error {
		// The actor's whole namespace is replaced on signup: stale
		// grants from a previous half-written state must not survive.
		if err := s.store.Clear(ctx, key); err != nil {
			return err
		}

		salt := random.Bytes(s.cfg.SaltLength)
		record := model.CredentialRecord{
			Salt:         salt,
			PasswordHash: s.digest(password, salt),
		}
		if err := storage.PutJSON(ctx, s.store, key, fieldRecord, record); err != nil {
			return err
		}
		if err := storage.PutJSON(ctx, s.store, key, fieldOwner, owner{UserID: user.ID, Username: username}); err != nil {
			return err
		}

		p, err := s.issueTokens(ctx, key, clientID)
		if err != nil {
			return err
		}
		pair = *p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("credentials created",
		slog.String("user_id", string(user.ID)),
		slog.String("client_id", string(clientID)),
	)
	return &pair, nil
}

// Login resolves the user by username and checks the password,
// issuing a fresh pair for the calling client on success
func (s *Service) Login(ctx context.Context, username, password string, clientID model.ClientID) (*model.TokenPair, error) {
	user, err := s.identity.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.CheckPassword(ctx, user.ID, password, clientID)
}

// CheckPassword recomputes the salted digest and compares it in
// constant time. A match issues a fresh pair for clientID only; grants
// held by other clients are untouched.
func (s *Service) CheckPassword(ctx context.Context, userID model.UserID, password string, clientID model.ClientID) (*model.TokenPair, error) {
	key := s.Key(userID)

	var pair model.TokenPair
	err := s.runtime.Do(ctx, key, func(ctx context.Context) error {
		var record model.CredentialRecord
		if err := storage.GetJSON(ctx, s.store, key, fieldRecord, &record); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return model.ErrInvalidCredentials
			}
			return err
		}

		digest := s.digest(password, record.Salt)
		if subtle.ConstantTimeCompare(digest, record.PasswordHash) != 1 {
			return model.ErrInvalidCredentials
		}

		p, err := s.issueTokens(ctx, key, clientID)
		if err != nil {
			return err
		}
		pair = *p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &pair, nil
}

// Refresh rotates the calling client's token pair. The presented
// refresh token must match the stored grant and be unexpired; after a
// successful rotation it is permanently invalid.
func (s *Service) Refresh(ctx context.Context, refreshToken string, clientID model.ClientID) (*model.TokenPair, error) {
	prefix, key, err := parseToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if prefix != refreshTokenPrefix {
		return nil, model.ErrTokenInvalid
	}

	var pair model.TokenPair
	err = s.runtime.Do(ctx, key, func(ctx context.Context) error {
		var grant model.TokenGrant
		if err := storage.GetJSON(ctx, s.store, key, refreshField(clientID), &grant); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return model.ErrTokenInvalid
			}
			return err
		}

		if !grant.Matches(refreshToken, clientID, s.clock.Now()) {
			return model.ErrTokenInvalid
		}

		p, err := s.issueTokens(ctx, key, clientID)
		if err != nil {
			return err
		}
		pair = *p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("tokens rotated",
		slog.String("actor", string(key)),
		slog.String("client_id", string(clientID)),
	)
	return &pair, nil
}

// VerifyAccessToken resolves a bearer token to the identity behind it.
// The actor key embedded in the token routes straight to the owning
// credential actor; the scope decision is delegated to the identity
// service.
func (s *Service) VerifyAccessToken(ctx context.Context, token string, clientID model.ClientID, scope model.Scope) (*model.Identity, error) {
	prefix, key, err := parseToken(token)
	if err != nil {
		return nil, err
	}
	if prefix != accessTokenPrefix {
		return nil, model.ErrTokenInvalid
	}

	var own owner
	err = s.runtime.Do(ctx, key, func(ctx context.Context) error {
		var grant model.TokenGrant
		if err := storage.GetJSON(ctx, s.store, key, accessField(clientID), &grant); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return model.ErrTokenInvalid
			}
			return err
		}

		if !grant.Matches(token, clientID, s.clock.Now()) {
			return model.ErrTokenInvalid
		}

		return storage.GetJSON(ctx, s.store, key, fieldOwner, &own)
	})
	if err != nil {
		return nil, err
	}

	if !s.identity.HasScope(ctx, own.UserID, scope) {
		return nil, model.ErrScopeDenied
	}

	return &model.Identity{UserID: own.UserID, Username: own.Username}, nil
}

// issueTokens mints a fresh access/refresh pair for one client and
// stores both grants, replacing whatever the client held before.
// Must be called with the actor's lock held.
func (s *Service) issueTokens(ctx context.Context, key actor.Key, clientID model.ClientID) (*model.TokenPair, error) {
	now := s.clock.Now()

	pair := model.TokenPair{
		AccessToken:   formatToken(accessTokenPrefix, key, s.random.Hex(tokenRandomBytes)),
		RefreshToken:  formatToken(refreshTokenPrefix, key, s.random.Hex(tokenRandomBytes)),
		AccessExpiry:  now.Add(s.cfg.AccessTTL),
		RefreshExpiry: now.Add(s.cfg.RefreshTTL),
		ClientID:      clientID,
	}

	access := model.TokenGrant{ClientID: clientID, Token: pair.AccessToken, Expiry: pair.AccessExpiry}
	if err := storage.PutJSON(ctx, s.store, key, accessField(clientID), access); err != nil {
		return nil, err
	}

	refresh := model.TokenGrant{ClientID: clientID, Token: pair.RefreshToken, Expiry: pair.RefreshExpiry}
	if err := storage.PutJSON(ctx, s.store, key, refreshField(clientID), refresh); err != nil {
		return nil, err
	}

	return &pair, nil
}

// hasRecord reports whether the user's credential actor holds a record
func (s *Service) hasRecord(ctx context.Context, userID model.UserID) bool {
	key := s.Key(userID)

	found := false
	_ = s.runtime.Do(ctx, key, func(ctx context.Context) error {
		_, err := s.store.Get(ctx, key, fieldRecord)
		found = err == nil
		return nil
	})
	return found
}

// digest computes the argon2id digest of a password under a salt
func (s *Service) digest(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, s.cfg.ArgonTime, s.cfg.ArgonMemory, s.cfg.ArgonThreads, s.cfg.KeyLength)
}
