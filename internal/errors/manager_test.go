package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAndGet(t *testing.T) {
	mgr, err := NewManager(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, mgr.Record("/data/gazette-2024-01.pdf", StageExtract, "corrupt content stream"))

	record, ok := mgr.Get("/data/gazette-2024-01.pdf")
	require.True(t, ok)
	assert.Equal(t, "gazette-2024-01.pdf", record.ID)
	assert.Equal(t, StageExtract, record.Stage)
	assert.Equal(t, "corrupt content stream", record.ErrorMsg)
	assert.Equal(t, 0, record.RetryCount)
}

// Re-recording the same source counts as a failed retry
func TestRecord_IncrementsRetryCount(t *testing.T) {
	mgr, err := NewManager(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, mgr.Record("a.pdf", StageOpen, "first failure"))
	require.NoError(t, mgr.Record("a.pdf", StageExtract, "second failure"))

	record, ok := mgr.Get("a.pdf")
	require.True(t, ok)
	assert.Equal(t, 1, record.RetryCount)
	assert.Equal(t, StageExtract, record.Stage)
	assert.Equal(t, "second failure", record.ErrorMsg)
	assert.False(t, record.LastRetry.IsZero())
}

func TestRemove(t *testing.T) {
	mgr, err := NewManager(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, mgr.Record("/data/ok.pdf", StageWrite, "disk full"))
	require.NoError(t, mgr.Remove("/data/ok.pdf"))

	_, ok := mgr.Get("/data/ok.pdf")
	assert.False(t, ok)
}

func TestRemove_MissingIsNoop(t *testing.T) {
	mgr, err := NewManager(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, mgr.Remove("never-recorded.pdf"))
}

func TestList_OldestFirst(t *testing.T) {
	mgr, err := NewManager(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, mgr.Record("first.pdf", StageOpen, "bad header"))
	require.NoError(t, mgr.Record("second.pdf", StageGeometry, "zero-width page"))

	records := mgr.List()
	require.Len(t, records, 2)
	assert.Equal(t, "first.pdf", records[0].ID)
	assert.Equal(t, "second.pdf", records[1].ID)
}

// Records survive a restart via the backing JSON file
func TestPersistenceAcrossManagers(t *testing.T) {
	dir := t.TempDir()

	mgr, err := NewManager(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Record("sticky.pdf", StageExtract, "xref damaged"))

	reopened, err := NewManager(dir)
	require.NoError(t, err)

	record, ok := reopened.Get("sticky.pdf")
	require.True(t, ok)
	assert.Equal(t, StageExtract, record.Stage)
	assert.Equal(t, "xref damaged", record.ErrorMsg)
}
