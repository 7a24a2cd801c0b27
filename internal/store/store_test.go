package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/piwi3910/BoxCut/internal/engine"
	"github.com/piwi3910/BoxCut/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testRecord(t *testing.T, width float64, material string) model.DesignRecord {
	t.Helper()
	record, err := engine.GenerateDesign(model.RawParams{Width: model.Float(width), Material: material}, model.DefaultCatalog())
	require.NoError(t, err)
	return record
}

func TestStore_SaveAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	record := testRecord(t, 400, "birch_plywood_18mm")

	entry, err := s.Save(ctx, "jewellery box", record)
	require.NoError(t, err)
	assert.Len(t, entry.ID, 36)

	got, err := s.Get(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "jewellery box", got.Name)
	assert.True(t, entry.CreatedAt.Equal(got.CreatedAt))
	if diff := cmp.Diff(record, got.Record); diff != "" {
		t.Errorf("stored record mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_GetByPrefix(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	entry, err := s.Save(ctx, "", testRecord(t, 400, ""))
	require.NoError(t, err)

	got, err := s.Get(ctx, entry.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, entry.ID, got.ID)

	_, err = s.Get(ctx, entry.ID[:3])
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_GetNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Get(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_AmbiguousPrefix(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	record := testRecord(t, 400, "")

	for _, id := range []string{"abcd1111-0000", "abcd2222-0000"} {
		_, err := s.db.ExecContext(ctx, `INSERT INTO designs (id, created_at, width, depth, height, thickness,
			material, style, total_cost, waste_percent, record_json) VALUES (?, ?, 1, 1, 1, 1, '', '', 0, 0, '{}')`,
			id, time.Now().UTC().Format(timeLayout))
		require.NoError(t, err)
	}
	_, err := s.Save(ctx, "", record)
	require.NoError(t, err)

	_, err = s.Get(ctx, "abcd")
	assert.ErrorIs(t, err, ErrAmbiguous)

	got, err := s.Get(ctx, "abcd1")
	require.NoError(t, err)
	assert.Equal(t, "abcd1111-0000", got.ID)
}

func TestStore_ListNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, w := range []float64{300, 400, 500} {
		ts := base.Add(time.Duration(i) * time.Minute)
		s.now = func() time.Time { return ts }
		_, err := s.Save(ctx, "", testRecord(t, w, "walnut"))
		require.NoError(t, err)
	}

	list, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, 500.0, list[0].Width)
	assert.Equal(t, 300.0, list[2].Width)
	assert.Equal(t, "walnut", list[0].Material)
	assert.True(t, list[0].PriceFallback)
	assert.Equal(t, "hinged_lid", list[0].Style)

	limited, err := s.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestStore_ListOrdersSubsecondTimestamps(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	whole := time.Date(2026, 3, 1, 12, 0, 5, 0, time.UTC)
	for i, ts := range []time.Time{
		whole,
		whole.Add(500 * time.Millisecond),
		whole.Add(-250 * time.Millisecond),
	} {
		s.now = func() time.Time { return ts }
		_, err := s.Save(ctx, "", testRecord(t, float64(300+100*i), ""))
		require.NoError(t, err)
	}

	list, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []float64{400, 300, 500}, []float64{list[0].Width, list[1].Width, list[2].Width})
	assert.True(t, list[1].CreatedAt.Equal(whole))
}

func TestStore_PrefixIsLiteral(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	entry, err := s.Save(ctx, "", testRecord(t, 400, ""))
	require.NoError(t, err)

	for _, prefix := range []string{"____", "%%%%", entry.ID[:3] + "_"} {
		_, err := s.Get(ctx, prefix)
		assert.ErrorIs(t, err, ErrNotFound, prefix)
		assert.ErrorIs(t, s.Delete(ctx, prefix), ErrNotFound, prefix)
	}

	got, err := s.Get(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, got.ID)
}

func TestStore_ListEmpty(t *testing.T) {
	list, err := newTestStore(t).List(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestStore_Delete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	entry, err := s.Save(ctx, "", testRecord(t, 400, ""))
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, entry.ID))

	_, err = s.Get(ctx, entry.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, entry.ID), ErrNotFound)
}

func TestStore_RejectsUnreadyRecord(t *testing.T) {
	_, err := newTestStore(t).Save(context.Background(), "", model.DesignRecord{})
	assert.Error(t, err)
}

func TestOpen_FileBackedPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	entry, err := s.Save(ctx, "kept", testRecord(t, 400, ""))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "kept", got.Name)
}
