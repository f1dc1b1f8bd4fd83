package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// fallbackMailDomain keeps provisioned accounts with a deterministic,
// never-blank email address when no mail configuration is present.
const fallbackMailDomain = "example.com"

// Config holds the account defaulting configuration.
type Config struct {
	// StaticRealName is the display name given to every auto-created account.
	StaticRealName string `env:"REMOTEAUTH_REAL_NAME" envDefault:""`

	// StaticEmail overrides the email of every auto-created account.
	StaticEmail string `env:"REMOTEAUTH_EMAIL" envDefault:""`

	// MailDomain builds emails as <name>@<MailDomain> when StaticEmail is
	// unset.
	MailDomain string `env:"REMOTEAUTH_MAIL_DOMAIN" envDefault:""`

	// NotifyByDefault turns on all notification categories for auto-created
	// accounts.
	NotifyByDefault bool `env:"REMOTEAUTH_NOTIFY_BY_DEFAULT" envDefault:"false"`
}

// DefaultConfig returns default provisioner configuration.
func DefaultConfig() Config {
	return Config{}
}

// Provisioner looks up or idempotently creates the application account for a
// normalized identity. Creation is tolerant of concurrent first-logins: a
// lost race against the store's unique-name constraint is recovered by
// re-fetching the winning record.
type Provisioner struct {
	store Store
	cfg   Config
	hook  InitHook
}

// ProvisionerOption is a functional option for the Provisioner.
type ProvisionerOption func(*Provisioner)

// WithInitHook registers the account initialization hook.
func WithInitHook(hook InitHook) ProvisionerOption {
	return func(p *Provisioner) {
		p.hook = hook
	}
}

// NewProvisioner creates a provisioner over the given account store.
func NewProvisioner(store Store, cfg Config, opts ...ProvisionerOption) *Provisioner {
	p := &Provisioner{
		store: store,
		cfg:   cfg,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// EnsureUser returns the account for the given normalized name, creating it
// on first sight. Repeat calls return the stored record unchanged: no hook
// invocation, no attribute overwrite.
func (p *Provisioner) EnsureUser(ctx context.Context, name string) (*Account, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	account, err := p.store.GetByName(ctx, name)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, errors.Join(ErrStoreFailure, err)
	}

	account, err = p.newAccount(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := p.store.Create(ctx, account); err != nil {
		if errors.Is(err, ErrNameTaken) {
			// Lost the first-login race: the winner's record is
			// authoritative, the in-progress draft is discarded.
			winner, getErr := p.store.GetByName(ctx, name)
			if getErr != nil {
				return nil, errors.Join(ErrStoreFailure, getErr)
			}
			return winner, nil
		}
		return nil, errors.Join(ErrStoreFailure, err)
	}

	return account, nil
}

// newAccount builds the account record for a first login, running the init
// hook and applying configured defaults unless the hook vetoes them.
func (p *Provisioner) newAccount(ctx context.Context, name string) (*Account, error) {
	draft := Draft{}
	applyDefaults := true

	if p.hook != nil {
		var err error
		draft, applyDefaults, err = p.hook(ctx, draft, true)
		if err != nil {
			return nil, errors.Join(ErrInitHook, err)
		}
	}

	account := &Account{
		ID:            uuid.New(),
		Name:          name,
		RealName:      draft.RealName,
		Email:         draft.Email,
		Notifications: draft.Notifications,
		CreatedAt:     time.Now(),
	}

	if !applyDefaults {
		return account, nil
	}

	account.RealName = p.cfg.StaticRealName
	account.Email = p.defaultEmail(name)

	// The identity arrived over a trusted channel, so the derived email is
	// trusted too.
	now := time.Now()
	account.EmailVerifiedAt = &now

	token, err := GenerateAuthToken()
	if err != nil {
		return nil, err
	}
	account.AuthToken = token

	if p.cfg.NotifyByDefault {
		account.Notifications = NotificationPrefs{
			WatchlistPages: true,
			UserTalkPages:  true,
			MinorEdits:     true,
			RevealAddress:  true,
		}
	}

	return account, nil
}

// defaultEmail resolves the email fallback chain: static override, configured
// mail domain, deterministic example.com fallback.
func (p *Provisioner) defaultEmail(name string) string {
	if p.cfg.StaticEmail != "" {
		return p.cfg.StaticEmail
	}
	if p.cfg.MailDomain != "" {
		return fmt.Sprintf("%s@%s", name, p.cfg.MailDomain)
	}
	return fmt.Sprintf("%s@%s", name, fallbackMailDomain)
}
