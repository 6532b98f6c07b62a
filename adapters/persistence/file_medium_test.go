package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileMedium_ReadMissingCollection(t *testing.T) {
	m, err := NewFileMedium(t.TempDir())
	require.NoError(t, err)

	data, err := m.ReadCollection(context.Background(), "accounts")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestFileMedium_WriteThenRead(t *testing.T) {
	m, err := NewFileMedium(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, m.WriteCollection(ctx, "accounts", []byte(`[{"id":"a"}]`)))

	data, err := m.ReadCollection(ctx, "accounts")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a"}]`, string(data))

	// overwrite replaces the whole collection
	require.NoError(t, m.WriteCollection(ctx, "accounts", []byte(`[]`)))
	data, err = m.ReadCollection(ctx, "accounts")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestFileMedium_CollectionsAreIndependent(t *testing.T) {
	m, err := NewFileMedium(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, m.WriteCollection(ctx, CollectionAccounts, []byte(`[]`)))

	data, err := m.ReadCollection(ctx, CollectionPortfolios)
	require.NoError(t, err)
	assert.Nil(t, data)
}
