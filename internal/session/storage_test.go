package session

import (
	"context"
	"path/filepath"
	"testing"

	tdsession "github.com/gotd/td/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zyra-views/internal/config"
)

func TestOpenStorage_FileWhenNoDSN(t *testing.T) {
	path := filepath.Join(t.TempDir(), "userbot.session")

	storage, closeFn, err := OpenStorage(context.Background(), config.TelegramConfig{SessionFile: path})
	require.NoError(t, err)
	defer closeFn()

	fs, ok := storage.(*tdsession.FileStorage)
	require.True(t, ok, "expected file storage, got %T", storage)
	assert.Equal(t, path, fs.Path)

	// nothing signed in yet
	_, err = storage.LoadSession(context.Background())
	assert.ErrorIs(t, err, tdsession.ErrNotFound)
}
