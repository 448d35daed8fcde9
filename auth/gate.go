// Package auth implements the admin login gate: two hardcoded mock
// accounts, a role-based permission table, and a session persisted to
// the local store under the admin_token/admin_user keys.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/NailaFatima/stylehub-go/models"
	"github.com/NailaFatima/stylehub-go/store"
	"github.com/NailaFatima/stylehub-go/utils"
	"go.uber.org/zap"
)

// ErrInvalidCredentials is returned when the username/password pair
// matches neither mock account.
var ErrInvalidCredentials = errors.New("invalid credentials")

// DefaultLoginDelay mirrors the simulated verification latency.
const DefaultLoginDelay = time.Second

// State names the gate's lifecycle phase.
type State string

const (
	StateLoading         State = "loading"
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticated   State = "authenticated"
)

type account struct {
	password string
	user     models.User
}

// The two mock accounts. Plain comparison, no hashing: this is a
// stand-in, not an authentication system.
var accounts = map[string]account{
	"admin": {
		password: "admin123",
		user: models.User{
			ID:       "1",
			Username: "admin",
			Email:    "admin@stylehub.com",
			Role:     models.RoleSuperAdmin,
			IsActive: true,
		},
	},
	"manager": {
		password: "manager123",
		user: models.User{
			ID:       "2",
			Username: "manager",
			Email:    "manager@stylehub.com",
			Role:     models.RoleManager,
			IsActive: true,
		},
	},
}

// Gate owns the admin auth state. It starts in the loading state and
// resolves to authenticated or unauthenticated once Init has read the
// persisted session.
type Gate struct {
	mu      sync.Mutex
	state   State
	user    *models.User
	token   string
	cache   *store.LocalStore
	secret  string
	delay   time.Duration
	log     *zap.Logger
	nowFunc func() time.Time
}

// NewGate builds a gate over the given session cache. Call Init to
// resolve the loading state.
func NewGate(cache *store.LocalStore, secret string, delay time.Duration, log *zap.Logger) *Gate {
	if delay <= 0 {
		delay = DefaultLoginDelay
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Gate{
		state:   StateLoading,
		cache:   cache,
		secret:  secret,
		delay:   delay,
		log:     log,
		nowFunc: time.Now,
	}
}

// Init restores a persisted session. A missing or unparseable user
// record clears both cache keys and resolves to unauthenticated.
func (g *Gate) Init() {
	g.mu.Lock()
	defer g.mu.Unlock()

	token, okToken := g.cache.Get(store.KeyAdminToken)
	rawUser, okUser := g.cache.Get(store.KeyAdminUser)
	if !okToken || !okUser {
		g.clearLocked()
		return
	}

	var user models.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		g.log.Warn("discarding corrupt admin session", zap.Error(err))
		g.clearLocked()
		return
	}

	g.state = StateAuthenticated
	g.user = &user
	g.token = token
	g.log.Info("admin session restored", zap.String("username", user.Username))
}

// Login verifies the credentials against the mock accounts after the
// simulated delay. The delay is context-bound: a cancelled context
// aborts without touching gate state.
func (g *Gate) Login(ctx context.Context, username, password string) (models.User, string, error) {
	select {
	case <-time.After(g.delay):
	case <-ctx.Done():
		return models.User{}, "", ctx.Err()
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	acct, ok := accounts[username]
	if !ok || acct.password != password {
		// A rejected attempt leaves any existing session untouched.
		g.log.Info("admin login failed", zap.String("username", username))
		return models.User{}, "", ErrInvalidCredentials
	}

	user := acct.user
	now := g.nowFunc()
	user.LastLogin = now
	user.CreatedAt = now

	token, err := utils.GenerateToken(user.Username, user.Role, g.secret)
	if err != nil {
		return models.User{}, "", err
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return models.User{}, "", err
	}
	if err := g.cache.Set(store.KeyAdminToken, token); err != nil {
		return models.User{}, "", err
	}
	if err := g.cache.Set(store.KeyAdminUser, string(raw)); err != nil {
		return models.User{}, "", err
	}

	g.state = StateAuthenticated
	g.user = &user
	g.token = token
	g.log.Info("admin login", zap.String("username", user.Username), zap.String("role", string(user.Role)))
	return user, token, nil
}

// Logout clears the persisted session and returns the gate to
// unauthenticated. Calling it on a logged-out gate is a no-op.
func (g *Gate) Logout() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.clearLocked()
}

// State returns the current lifecycle phase.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// CurrentUser returns the authenticated user, if any.
func (g *Gate) CurrentUser() (models.User, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.user == nil {
		return models.User{}, false
	}
	return *g.user, true
}

// Token returns the active session token, if any.
func (g *Gate) Token() (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != StateAuthenticated {
		return "", false
	}
	return g.token, true
}

// HasPermission resolves a permission for the authenticated user. A
// logged-out gate denies everything.
func (g *Gate) HasPermission(permission string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.user == nil {
		return false
	}
	return RoleHasPermission(g.user.Role, permission)
}

func (g *Gate) clearLocked() {
	if err := g.cache.Remove(store.KeyAdminToken, store.KeyAdminUser); err != nil {
		g.log.Warn("failed to clear admin session cache", zap.Error(err))
	}
	g.state = StateUnauthenticated
	g.user = nil
	g.token = ""
}
