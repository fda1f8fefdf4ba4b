package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// fakePgx interprets the handful of statements the session repository issues.
type fakePgx struct {
	mu     sync.Mutex
	values map[string]string
}

type fakeRow struct {
	value string
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != 1 {
		return fmt.Errorf("expected one destination, got %d", len(dest))
	}
	*(dest[0].(*string)) = r.value
	return nil
}

func (f *fakePgx) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !strings.HasPrefix(strings.TrimSpace(sql), "SELECT value FROM session_store") {
		return fakeRow{err: fmt.Errorf("unexpected query %q", sql)}
	}
	value, ok := f.values[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{value: value}
}

func (f *fakePgx) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stmt := strings.TrimSpace(sql)
	switch {
	case strings.HasPrefix(stmt, "CREATE TABLE"):
		return pgconn.NewCommandTag("CREATE TABLE"), nil
	case strings.HasPrefix(stmt, "INSERT INTO session_store"):
		f.values[args[0].(string)] = args[1].(string)
		return pgconn.NewCommandTag("INSERT 0 1"), nil
	case strings.HasPrefix(stmt, "DELETE FROM session_store"):
		for _, key := range args[0].([]string) {
			delete(f.values, key)
		}
		return pgconn.NewCommandTag("DELETE 1"), nil
	}
	return pgconn.CommandTag{}, fmt.Errorf("unexpected statement %q", sql)
}

func (f *fakePgx) Ping(context.Context) error { return nil }

func (f *fakePgx) Close() {}

func newFakePostgresRepo(t *testing.T) SessionRepository {
	t.Helper()
	repo, err := NewPostgresSessionRepository(context.Background(), &fakePgx{values: map[string]string{}}, zap.NewNop())
	if err != nil {
		t.Fatalf("new postgres repo: %v", err)
	}
	return repo
}
