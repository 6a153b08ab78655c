package report

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONWriter_Write(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	rep := RunReport{
		RunID:      "c2a7f1de-0000-0000-0000-000000000000",
		StartedAt:  time.Now().UTC(),
		DurationMs: 42,
		Compiler:   "grpc_tools_node_protoc",
		Args:       []string{"-Isrc", "munkey.proto"},
		ExitCode:   0,
	}

	tempFile := filepath.Join(t.TempDir(), "reports.ndjson")
	ctx, cancel := context.WithCancel(context.Background())
	jw, err := NewJSONWriter(ctx, tempFile)
	r.NoError(err)

	a.NoError(jw.Write(rep), "write successful")

	cancel()
	err = jw.Write(rep)
	a.Error(err, "context canceled")

	var got RunReport
	file, err := os.ReadFile(tempFile)
	r.NoError(err)
	r.NoError(json.Unmarshal(file, &got))
	a.Equal(rep.RunID, got.RunID)
	a.Equal(rep.Compiler, got.Compiler)
	a.Equal(rep.Args, got.Args)
	a.Equal(rep.ExitCode, got.ExitCode)
	a.Empty(got.Error)
}

func TestNewWriter(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	w, err := NewWriter(ctx, "jsonfile://"+filepath.Join(t.TempDir(), "reports.ndjson"))
	a.NoError(err)
	a.NotNil(w)

	_, err = NewWriter(ctx, "fooboo")
	a.ErrorContains(err, "malformed report URI")

	_, err = NewWriter(ctx, "carrier-pigeon://somewhere")
	a.ErrorContains(err, "unknown schema")
}
