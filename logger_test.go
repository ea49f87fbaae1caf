package neodb

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}
	return out
}

func TestLogger_Outcomes(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})).With("run", 7)
	ctx := context.Background()

	l.LogLink(ctx, 3, 5, nil)
	l.LogQuery(ctx, "date=2020-01-01", 5, 2, nil)
	l.LogWrite(ctx, "out.csv", "csv", 2, errors.New("disk full"))

	recs := jsonLines(t, &buf)
	require.Len(t, recs, 3)

	assert.Equal(t, "INFO", recs[0]["level"])
	assert.Equal(t, "data set linked", recs[0]["msg"])
	assert.EqualValues(t, 5, recs[0]["approaches"])
	assert.EqualValues(t, 7, recs[0]["run"])

	assert.Equal(t, "DEBUG", recs[1]["level"])
	assert.EqualValues(t, 2, recs[1]["matched"])

	assert.Equal(t, "ERROR", recs[2]["level"])
	assert.Equal(t, "write failed", recs[2]["msg"])
	assert.Equal(t, "disk full", recs[2]["error"])
	assert.Equal(t, "out.csv", recs[2]["dest"])
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	ctx := context.Background()

	l.LogLookup(ctx, "pdes", "433", true)
	l.LogLoad(ctx, "neos.csv", 10, 0, nil)
	assert.Empty(t, buf.String())

	l.LogLoad(ctx, "neos.csv", 0, 0, errors.New("bad header"))
	assert.Contains(t, buf.String(), "load failed")
	assert.Contains(t, buf.String(), "source=neos.csv")
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
	l.LogLink(context.Background(), 0, 0, errors.New("ignored"))
}
