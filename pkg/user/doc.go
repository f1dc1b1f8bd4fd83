// Package user provisions application accounts for proxy-verified
// identities. The normalized identity string is the unique account key: the
// first request that sees an identity creates its account, every later
// request returns the stored record untouched.
//
// # Concurrency
//
// Simultaneous first-time logins for the same identity race through the
// provisioner. The guarantee is at most one stored account per name,
// supplied by the store's create-if-absent semantics (unique-name constraint
// plus re-fetch-on-conflict): the loser of the race silently adopts the
// winner's record instead of erroring or duplicating. No locks are held
// across the lookup/create window.
//
// # Usage
//
//	p := user.NewProvisioner(user.NewMemoryStore(), user.Config{
//	    MailDomain:      "corp.example",
//	    NotifyByDefault: true,
//	})
//
//	account, err := p.EnsureUser(ctx, "alice")
//
// An InitHook can populate the real name or email from an external directory
// before the account is created. Returning false vetoes the built-in
// defaulting, which is how a hook keeps its own attributes from being
// replaced by the configured static values:
//
//	p := user.NewProvisioner(store, cfg, user.WithInitHook(
//	    func(ctx context.Context, draft user.Draft, autoCreate bool) (user.Draft, bool, error) {
//	        draft.RealName = directory.Lookup(ctx)
//	        return draft, false, nil
//	    },
//	))
//
// Stores ship for memory (tests, single-process setups) and PostgreSQL
// (migrations under migrations/, applied with pkg/pg).
package user
