package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Run(`tilde prefix`, func(t *testing.T) {
		require.Equal(t, filepath.Join(home, "Dropbox", "Rota"), ExpandHome("~/Dropbox/Rota"))
	})
	t.Run(`bare tilde`, func(t *testing.T) {
		require.Equal(t, home, ExpandHome("~"))
	})
	t.Run(`untouched`, func(t *testing.T) {
		require.Equal(t, "/data/rota.xlsx", ExpandHome("/data/rota.xlsx"))
		require.Equal(t, "~user/rota.xlsx", ExpandHome("~user/rota.xlsx"))
		require.Equal(t, "", ExpandHome(""))
	})
}
