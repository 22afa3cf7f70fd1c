package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/migration-world/tabmigrate/pkg/domain/interfaces"
	"github.com/migration-world/tabmigrate/pkg/domain/model"
)

// withSession opens a session, runs fn, and signs out on every path. One
// sign-in/sign-out pair per handler invocation; no reuse or pooling.
func withSession(ctx context.Context, client interfaces.TableauClient, creds *model.Credentials, fn func(sess *model.Session) error) error {
	sess, err := client.SignIn(ctx, creds)
	if err != nil {
		return goerr.Wrap(err, "connection failed")
	}
	defer func() {
		if err := client.SignOut(ctx, sess); err != nil {
			ctxlog.From(ctx).Warn("Sign out failed", "error", err)
		}
	}()

	return fn(sess)
}
