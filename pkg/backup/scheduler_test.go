package backup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	calls int
	ok    bool
}

func (f *fakeRunner) BackupDatabase(backupDir string, includeImages bool) bool {
	f.calls++
	return f.ok
}

func TestScheduler_StartRejectsEmptyBackupDir(t *testing.T) {
	s := NewScheduler(&fakeRunner{ok: true}, "", true)
	err := s.Start("0 3 * * *")
	require.Error(t, err)
}

func TestScheduler_StartRejectsInvalidSpec(t *testing.T) {
	s := NewScheduler(&fakeRunner{ok: true}, t.TempDir(), true)
	err := s.Start("not a cron spec")
	require.Error(t, err)
}

func TestScheduler_StartAndStop(t *testing.T) {
	s := NewScheduler(&fakeRunner{ok: true}, t.TempDir(), true)
	require.NoError(t, s.Start("0 3 * * *"))
	assert.NotZero(t, s.entryID)
	s.Stop()
}

func TestScheduler_RunReportsOutcome(t *testing.T) {
	failing := &fakeRunner{ok: false}
	s := NewScheduler(failing, t.TempDir(), false)
	s.run()
	assert.Equal(t, 1, failing.calls)

	passing := &fakeRunner{ok: true}
	s = NewScheduler(passing, t.TempDir(), false)
	s.run()
	assert.Equal(t, 1, passing.calls)
}
