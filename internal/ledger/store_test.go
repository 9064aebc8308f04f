package ledger_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/lionshare/internal/ledger"
	_ "github.com/crimson-sun/lionshare/internal/ledger/csvfile"
	_ "github.com/crimson-sun/lionshare/internal/ledger/sqlite"
	"github.com/crimson-sun/lionshare/internal/model"
)

func TestBackends(t *testing.T) {
	assert.Equal(t, []string{"csv", "sqlite"}, ledger.Backends())
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := ledger.Open("postgres", "x")
	assert.ErrorContains(t, err, "unknown ledger backend")
}

func TestBackendsRoundTripOrder(t *testing.T) {
	rows := []model.Row{
		{Name: "Tiger II (H)", Value: 14764, Flagged: true},
		{Name: "Ka-50", Value: 1281},
		{Name: "Škoda T 25", Value: -5},
	}
	for _, backend := range ledger.Backends() {
		t.Run(backend, func(t *testing.T) {
			ctx := context.Background()
			s, err := ledger.Open(backend, filepath.Join(t.TempDir(), "ledger"))
			require.NoError(t, err)
			defer s.Close()

			empty, err := s.Load(ctx)
			require.NoError(t, err)
			assert.Empty(t, empty)

			require.NoError(t, s.Save(ctx, rows))
			got, err := s.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, rows, got)

			// Save replaces rather than appends.
			require.NoError(t, s.Save(ctx, rows[:1]))
			got, err = s.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, rows[:1], got)
		})
	}
}
