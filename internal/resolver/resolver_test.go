package resolver

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"go.uber.org/zap"

	"bookshelf/internal/auth"
	"bookshelf/internal/catalog"
	"bookshelf/internal/collection"
	"bookshelf/internal/database"
	"bookshelf/internal/user"
)

type testEnv struct {
	resolver       *Resolver
	tokens         *auth.TokenManager
	users          *user.MockRepository
	creds          *auth.MockCredentialRepository
	catalogRepo    *catalog.MockRepository
	collectionRepo *collection.MockRepository
	tx             *database.MockTransactor
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	env := &testEnv{
		tokens:         auth.NewTokenManager("test-secret", time.Hour),
		users:          user.NewMockRepository(ctrl),
		creds:          auth.NewMockCredentialRepository(ctrl),
		catalogRepo:    catalog.NewMockRepository(ctrl),
		collectionRepo: collection.NewMockRepository(ctrl),
		tx:             database.NewMockTransactor(ctrl),
	}

	log := zap.NewNop()
	env.resolver = New(
		env.tokens,
		auth.NewService(env.creds),
		env.users,
		catalog.NewService(env.catalogRepo, env.tx, log),
		collection.NewService(env.collectionRepo),
		env.tx,
		log,
	)
	return env
}

// passTx expects one WithTx call that simply runs its function.
func (e *testEnv) passTx() {
	e.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

// token returns a valid bearer token for subject.
func (e *testEnv) token(t *testing.T, subject string) string {
	t.Helper()
	tok, err := e.tokens.Issue(subject)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return tok
}

func messages(errs []Error) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Message)
	}
	return out
}
