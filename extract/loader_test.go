package extract

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/neodb"
	"github.com/hupe1980/neodb/blobstore"
	"github.com/hupe1980/neodb/compress"
	"github.com/hupe1980/neodb/resource"
)

func compressed(t *testing.T, path string, typ compress.Type) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	w, err := compress.NewWriter(&buf, typ)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func memResolver(t *testing.T) (*blobstore.Resolver, *blobstore.MemoryStore) {
	t.Helper()

	mem := blobstore.NewMemoryStore()
	r := blobstore.NewResolver()
	r.Register("mem", blobstore.StaticFactory(mem))
	return r, mem
}

func TestLoader_LocalFiles(t *testing.T) {
	mc := &neodb.BasicMetricsCollector{}
	l := NewLoader(WithMetricsCollector(mc))

	ds, err := l.Load(context.Background(), filepath.Join("testdata", "neos.csv"), filepath.Join("testdata", "cad.json"))
	require.NoError(t, err)

	assert.Len(t, ds.NEOs, 4)
	assert.Len(t, ds.Approaches, 6)
	assert.Equal(t, []uint32{4}, ds.NEOReport.DroppedRows())
	assert.Equal(t, []uint32{4}, ds.ApproachReport.DroppedRows())
	assert.Equal(t, filepath.Join("testdata", "neos.csv"), ds.NEOReport.Source)

	stats := mc.GetStats()
	assert.Equal(t, int64(2), stats.LoadCount)
	assert.Equal(t, int64(10), stats.LoadRecords)
	assert.Equal(t, int64(2), stats.LoadDropped)
	assert.Equal(t, int64(0), stats.LoadErrors)

	db, err := ds.Database()
	require.NoError(t, err)

	rocky, ok := db.GetByName("Rocky")
	require.True(t, ok)
	assert.Len(t, rocky.Approaches, 2)
}

func TestLoader_Compressed(t *testing.T) {
	ctx := context.Background()
	r, mem := memResolver(t)

	require.NoError(t, mem.Put(ctx, "neos.csv.gz", compressed(t, "testdata/neos.csv", compress.Gzip)))
	require.NoError(t, mem.Put(ctx, "cad.json.lz4", compressed(t, "testdata/cad.json", compress.LZ4)))
	// No extension: the format is detected from the content.
	require.NoError(t, mem.Put(ctx, "cad-latest", compressed(t, "testdata/cad.json", compress.Zstd)))

	l := NewLoader(WithResolver(r), WithResourceController(resource.NewController(resource.Config{})))

	ds, err := l.Load(ctx, "mem://data/neos.csv.gz", "mem://data/cad.json.lz4")
	require.NoError(t, err)
	assert.Len(t, ds.NEOs, 4)
	assert.Len(t, ds.Approaches, 6)

	approaches, report, err := l.LoadApproaches(ctx, "mem://data/cad-latest")
	require.NoError(t, err)
	assert.Len(t, approaches, 6)
	assert.Equal(t, "mem://data/cad-latest", report.Source)
}

func TestLoader_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("MissingSource", func(t *testing.T) {
		mc := &neodb.BasicMetricsCollector{}
		l := NewLoader(WithMetricsCollector(mc))

		_, err := l.Load(ctx, filepath.Join("testdata", "neos.csv"), filepath.Join("testdata", "missing.json"))
		require.ErrorIs(t, err, blobstore.ErrNotFound)
		assert.GreaterOrEqual(t, mc.GetStats().LoadErrors, int64(1))
	})

	t.Run("UnsupportedScheme", func(t *testing.T) {
		_, _, err := NewLoader().LoadNEOs(ctx, "gopher://host/neos.csv")
		assert.ErrorIs(t, err, blobstore.ErrUnsupportedScheme)
	})

	t.Run("BudgetExceeded", func(t *testing.T) {
		rc := resource.NewController(resource.Config{LoadBudgetBytes: 16})
		l := NewLoader(WithResourceController(rc))

		_, _, err := l.LoadNEOs(ctx, filepath.Join("testdata", "neos.csv"))
		require.ErrorIs(t, err, resource.ErrBudgetExceeded)
		assert.Equal(t, int64(0), rc.BudgetUsage())
	})

	t.Run("ParseError", func(t *testing.T) {
		r, mem := memResolver(t)
		require.NoError(t, mem.Put(ctx, "neos.csv", []byte("pdes,name,pha,diameter\n1,,N,wide\n")))

		_, _, err := NewLoader(WithResolver(r)).LoadNEOs(ctx, "mem://data/neos.csv")

		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, ColDiameter, perr.Field)
	})

	t.Run("Canceled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		rc := resource.NewController(resource.Config{MaxConcurrentLoads: 1})
		require.True(t, rc.TryAcquireLoad())
		defer rc.ReleaseLoad()

		_, _, err := NewLoader(WithResourceController(rc)).LoadNEOs(cctx, filepath.Join("testdata", "neos.csv"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLoader_BudgetReleased(t *testing.T) {
	rc := resource.NewController(resource.Config{LoadBudgetBytes: 1 << 20})
	l := NewLoader(WithResourceController(rc))

	_, err := l.Load(context.Background(), filepath.Join("testdata", "neos.csv"), filepath.Join("testdata", "cad.json"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), rc.BudgetUsage())
}
