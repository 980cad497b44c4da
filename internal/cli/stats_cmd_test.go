package cli

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsTable_RejectsNonPositiveWindow(t *testing.T) {
	app := newTestApp(t, http.NewServeMux())

	for _, daysArg := range []string{"0", "-3"} {
		cmd := newStatsTableCmd(app)
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		cmd.SetArgs([]string{"--days", daysArg})

		err := cmd.Execute()
		require.Error(t, err, "days=%s", daysArg)
		assert.Contains(t, err.Error(), "at least 1")
	}
}

func TestStatsHeatmap_RejectsNonPositiveWindow(t *testing.T) {
	app := newTestApp(t, http.NewServeMux())

	cmd := newStatsHeatmapCmd(app)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--weeks", "0"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 1")
}
