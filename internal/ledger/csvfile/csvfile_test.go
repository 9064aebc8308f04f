package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/lionshare/internal/model"
)

func TestLoad_ExistingFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	body := "Tiger II (H),12000,True\r\n\"M4A3E8 \"\"Thunderbolt\"\"\",400,False\r\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	rows, err := New(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Row{
		{Name: "Tiger II (H)", Value: 12000, Flagged: true},
		{Name: `M4A3E8 "Thunderbolt"`, Value: 400},
	}, rows)
}

func TestSave_WritesThreeColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	s := New(path)
	require.NoError(t, s.Save(context.Background(), []model.Row{
		{Name: "Ka-50", Value: 981},
		{Name: "Tiger II (H)", Value: 2764, Flagged: true},
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Ka-50,981,False\nTiger II (H),2764,True\n", string(data))

	leftovers, err := filepath.Glob(path + ".*.tmp")
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestLoad_BadValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("Ka-50,lots,False\n"), 0644))

	_, err := New(path).Load(context.Background())
	assert.ErrorContains(t, err, "line 1")
}

func TestLoad_WrongColumnCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("Ka-50,981\n"), 0644))

	_, err := New(path).Load(context.Background())
	assert.Error(t, err)
}
