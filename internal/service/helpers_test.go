package service

import (
	"database/sql"
	"sync"
	"testing"
	"time"

	"tally/internal/db"
	"tally/internal/repository"
	"tally/internal/testutil"
)

type testEnv struct {
	DB        *sql.DB
	Goals     repository.GoalRepo
	Revisions repository.RevisionRepo
	Logs      repository.LogRepo
	Sessions  repository.FocusSessionRepo
	UoW       db.UnitOfWork
	Clock     *fakeClock
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &testEnv{
		DB:        database,
		Goals:     repository.NewSQLiteGoalRepo(database),
		Revisions: repository.NewSQLiteRevisionRepo(database),
		Logs:      repository.NewSQLiteLogRepo(database),
		Sessions:  repository.NewSQLiteFocusSessionRepo(database),
		UoW:       testutil.NewTestUoW(database),
		Clock:     newFakeClock(time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)),
	}
}

func (e *testEnv) focusService() FocusService {
	return NewFocusService(e.Sessions, e.UoW, time.UTC, e.Clock.Now)
}

// fakeClock is a settable clock for driving session expiry in tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(start time.Time) *fakeClock {
	return &fakeClock{now: start}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
