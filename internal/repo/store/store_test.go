package store_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keshon/gvt/internal/config"
	"github.com/keshon/gvt/internal/repo/status"
	"github.com/keshon/gvt/internal/repo/store"
)

func newStore(t *testing.T) (*store.Store, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	return store.New(fs), fs
}

func TestInitCreatesLayout(t *testing.T) {
	s, _ := newStore(t)
	require.False(t, s.Initialized())
	require.NoError(t, s.Init())
	require.True(t, s.Initialized())

	latest, err := s.LatestVersion()
	require.NoError(t, err)
	assert.Equal(t, 0, latest)

	active, err := s.ActiveVersion()
	require.NoError(t, err)
	assert.Equal(t, 0, active)

	require.True(t, s.VersionExists(0))
	msg, err := s.Message(0)
	require.NoError(t, err)
	assert.Equal(t, store.InitMessage, msg)

	names, err := s.ListTrackedFiles(0)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestInitTwiceFails(t *testing.T) {
	s, _ := newStore(t)
	require.NoError(t, s.Init())
	err := s.Init()
	require.ErrorIs(t, err, status.ErrAlreadyInitialized)
}

func TestCounterRoundTrip(t *testing.T) {
	s, _ := newStore(t)
	require.NoError(t, s.Init())

	require.NoError(t, s.SetLatestVersion(3))
	require.NoError(t, s.SetActiveVersion(2))

	latest, err := s.LatestVersion()
	require.NoError(t, err)
	assert.Equal(t, 3, latest)

	active, err := s.ActiveVersion()
	require.NoError(t, err)
	assert.Equal(t, 2, active)
}

func TestCorruptCounters(t *testing.T) {
	cases := []struct {
		name    string
		prepare func(fs afero.Fs)
	}{
		{"garbage", func(fs afero.Fs) {
			afero.WriteFile(fs, config.StorageDir+"/"+config.LatestVersionFile, []byte("not-a-number"), 0o644)
		}},
		{"negative", func(fs afero.Fs) {
			afero.WriteFile(fs, config.StorageDir+"/"+config.LatestVersionFile, []byte("-5"), 0o644)
		}},
		{"missing", func(fs afero.Fs) {
			fs.Remove(config.StorageDir + "/" + config.LatestVersionFile)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, fs := newStore(t)
			require.NoError(t, s.Init())
			tc.prepare(fs)
			_, err := s.LatestVersion()
			require.ErrorIs(t, err, status.ErrCorruptRepository)
		})
	}
}

func TestListTrackedFilesExcludesMessage(t *testing.T) {
	s, _ := newStore(t)
	require.NoError(t, s.Init())
	require.NoError(t, s.CreateVersionDir(1))
	require.NoError(t, s.WriteMessage(1, "first"))
	require.NoError(t, s.WriteFile(1, "b.txt", []byte("b")))
	require.NoError(t, s.WriteFile(1, "a.txt", []byte("a")))

	names, err := s.ListTrackedFiles(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, names)
}

func TestFileTracked(t *testing.T) {
	s, _ := newStore(t)
	require.NoError(t, s.Init())
	require.NoError(t, s.CreateVersionDir(1))
	require.NoError(t, s.WriteFile(1, "a.txt", []byte("a")))
	require.NoError(t, s.WriteMessage(1, "first"))

	assert.True(t, s.FileTracked(1, "a.txt"))
	assert.False(t, s.FileTracked(1, "b.txt"))
	// the message entry is bookkeeping, not a tracked file
	assert.False(t, s.FileTracked(1, config.MessageEntry))
}

func TestCreateVersionDirTwiceFails(t *testing.T) {
	s, _ := newStore(t)
	require.NoError(t, s.Init())
	require.NoError(t, s.CreateVersionDir(1))
	err := s.CreateVersionDir(1)
	require.ErrorIs(t, err, status.ErrVersionExists)
}

func TestReadFileMissing(t *testing.T) {
	s, _ := newStore(t)
	require.NoError(t, s.Init())
	_, err := s.ReadFile(0, "nope.txt")
	require.Error(t, err)
}

func TestMessageFirstLine(t *testing.T) {
	s, _ := newStore(t)
	require.NoError(t, s.Init())
	require.NoError(t, s.CreateVersionDir(1))
	require.NoError(t, s.WriteMessage(1, "first line\nsecond line"))

	line, err := s.MessageFirstLine(1)
	require.NoError(t, err)
	assert.Equal(t, "first line", line)

	full, err := s.Message(1)
	require.NoError(t, err)
	assert.Equal(t, "first line\nsecond line", full)
}
