package backup

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Make(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "backups")
	svc := Service{Location: dir, Source: func() ([]byte, error) { return []byte(`[{"id":1}]`), nil }}

	fname, err := svc.Make(t.Context())
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(fname))

	data, err := os.ReadFile(fname) // nolint gosec
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, string(data))

	fname2, err := svc.Make(t.Context())
	require.NoError(t, err)
	assert.NotEqual(t, fname, fname2)
}

func TestService_MakeSourceError(t *testing.T) {
	svc := Service{Location: t.TempDir(), Source: func() ([]byte, error) { return nil, errors.New("boom") }}
	_, err := svc.Make(t.Context())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Empty(t, svc.List())
}

func TestService_ListKeep(t *testing.T) {
	dir := t.TempDir()
	svc := Service{Location: dir, Keep: 2, Source: func() ([]byte, error) { return []byte("[]"), nil }}

	var names []string
	for i := 0; i < 4; i++ {
		fname, err := svc.Make(t.Context())
		require.NoError(t, err)
		names = append(names, fname)
		// distinct mod times keep the order deterministic
		ts := time.Now().Add(time.Duration(i-10) * time.Minute)
		require.NoError(t, os.Chtimes(fname, ts, ts))
	}

	res := svc.List()
	require.Len(t, res, 2)
	assert.Equal(t, names[3], res[0].Fname)
	assert.Equal(t, names[2], res[1].Fname)
	assert.Equal(t, int64(2), res[0].Size)

	_, err := os.Stat(names[0])
	assert.True(t, os.IsNotExist(err), "oldest removed")
}

func TestService_ListMaxAge(t *testing.T) {
	dir := t.TempDir()
	svc := Service{Location: dir, MaxAge: time.Hour, Source: func() ([]byte, error) { return []byte("[]"), nil }}

	fresh, err := svc.Make(t.Context())
	require.NoError(t, err)

	old := filepath.Join(dir, "1000-1.backup.json")
	require.NoError(t, os.WriteFile(old, []byte("[]"), 0o600))
	ts := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(old, ts, ts))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o600))

	res := svc.List()
	require.Len(t, res, 1)
	assert.Equal(t, fresh, res[0].Fname)
	_, err = os.Stat(old)
	assert.True(t, os.IsNotExist(err))
}

func TestService_ForeignFilesSurvive(t *testing.T) {
	dir := t.TempDir()
	svc := Service{Location: dir, Keep: 1, MaxAge: time.Minute, Source: func() ([]byte, error) { return []byte("[]"), nil }}

	ts := time.Now().Add(-time.Hour)
	foreign := []string{"jobwiseJobs.json", "old.json", "123.json", "1-2.json.bak", "notes.txt"}
	for _, name := range foreign {
		fname := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(fname, []byte("[]"), 0o600))
		require.NoError(t, os.Chtimes(fname, ts, ts))
	}

	for range 3 {
		_, err := svc.Make(t.Context())
		require.NoError(t, err)
	}

	res := svc.List()
	require.Len(t, res, 1)
	assert.Regexp(t, `\d+-3\.backup\.json$`, res[0].Fname)
	for _, name := range foreign {
		assert.FileExists(t, filepath.Join(dir, name))
	}
}

func TestService_ListMissingDir(t *testing.T) {
	svc := Service{Location: "/tmp/jobwise-backup-does-not-exist-" + t.Name()}
	assert.Empty(t, svc.List())
}

func TestService_Run(t *testing.T) {
	dir := t.TempDir()
	svc := Service{Location: dir, Source: func() ([]byte, error) { return []byte("[]"), nil }}

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx, "@every 1s") }()

	require.Eventually(t, func() bool { return len(svc.List()) > 0 }, 3*time.Second, 50*time.Millisecond)
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("backup loop not stopped")
	}
}

func TestService_RunBadSchedule(t *testing.T) {
	svc := Service{Location: t.TempDir()}
	err := svc.Run(t.Context(), "every now and then")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid backup schedule")
}
