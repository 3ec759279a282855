package guidesync

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadIDList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guias.csv")
	err := os.WriteFile(path, []byte(
		"guia,link\n"+
			"1774435,https://hoko.com.co/admin/resources/guides/1774435\n"+
			"1774436,https://hoko.com.co/admin/resources/guides/1774436\n"+
			"\n"+
			"pendiente revisar,\n"+
			"1774440,\n",
	), 0600)
	require.NoError(t, err)

	ids, err := ReadIDList(path)
	require.NoError(t, err)
	require.Equal(t, []int64{1774435, 1774436, 1774440}, ids)
}

func TestReadIDListMissingFile(t *testing.T) {
	_, err := ReadIDList(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}
