package terminal

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const envelope = `{"payload": {"results": [
	{"date": "2024-01-02T00:00:00Z", "revenue": "250", "cogs": "100", "ads_cost": "20"},
	{"date": "2024-01-01T00:00:00Z", "revenue": "100.50", "cogs": "40", "ads_cost": "10.5"}
]}}`

func reportServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cli := NewCLI(Options{Output: &out, LogOutput: io.Discard})
	cli.rootCmd.SetArgs(args)
	err := cli.Execute(context.Background())
	return out.String(), err
}

func tableRows(out string) []string {
	var rows []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "| 2024-") {
			rows = append(rows, line)
		}
	}
	return rows
}

func TestCLI_Report(t *testing.T) {
	srv := reportServer(t, http.StatusOK, envelope)

	out, err := runCLI(t, "report", "--endpoint", srv.URL)

	require.NoError(t, err)
	rows := tableRows(out)
	require.Len(t, rows, 2)
	assert.True(t, strings.HasPrefix(rows[0], "| 2024-01-02"))
	assert.Contains(t, rows[0], "130.00")
	assert.Contains(t, rows[1], "50.00")
	assert.Contains(t, out, "180.00")
}

func TestCLI_Report_Sorted(t *testing.T) {
	srv := reportServer(t, http.StatusOK, envelope)

	out, err := runCLI(t, "report", "--endpoint", srv.URL, "--sort", "date")

	require.NoError(t, err)
	rows := tableRows(out)
	require.Len(t, rows, 2)
	assert.True(t, strings.HasPrefix(rows[0], "| 2024-01-01"))
}

func TestCLI_Report_Summary(t *testing.T) {
	srv := reportServer(t, http.StatusOK, envelope)

	out, err := runCLI(t, "report", "--endpoint", srv.URL, "--format", "summary")

	require.NoError(t, err)
	assert.Contains(t, out, "Period: 2024-01-01 to 2024-01-02")
	assert.Contains(t, out, "Records: 2")
	assert.Contains(t, out, "Profit & Loss: USD 180.00")
}

func TestCLI_Report_FetchFailureShowsEmptyTable(t *testing.T) {
	srv := reportServer(t, http.StatusInternalServerError, `{}`)

	out, err := runCLI(t, "report", "--endpoint", srv.URL)

	require.NoError(t, err)
	assert.Empty(t, tableRows(out))
	assert.Contains(t, out, "0.00")
}

func TestCLI_Report_Errors(t *testing.T) {
	srv := reportServer(t, http.StatusOK, envelope)

	_, err := runCLI(t, "report", "--endpoint", srv.URL, "--format", "xml")
	assert.Error(t, err)

	_, err = runCLI(t, "report", "--endpoint", srv.URL, "--sort", "margin")
	assert.Error(t, err)
}

func TestCLI_Chart(t *testing.T) {
	srv := reportServer(t, http.StatusOK, envelope)
	path := filepath.Join(t.TempDir(), "revenue.html")

	_, err := runCLI(t, "chart", "--endpoint", srv.URL, "--out", path)

	require.NoError(t, err)
	html, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Revenue Graph")
	assert.Contains(t, string(html), "2024-01-02")
}

func TestCLI_Profiles(t *testing.T) {
	srv := reportServer(t, http.StatusOK, envelope)
	path := filepath.Join(t.TempDir(), ".pnlcfg")
	content := "[local]\nendpoint = " + srv.URL + "\n\n[staging]\nendpoint = https://staging.example.com/r\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	out, err := runCLI(t, "profiles", "--profiles", path)
	require.NoError(t, err)
	assert.Contains(t, out, "local\nstaging")

	out, err = runCLI(t, "report", "--profiles", path, "--profile", "local")
	require.NoError(t, err)
	assert.Len(t, tableRows(out), 2)

	_, err = runCLI(t, "report", "--profiles", path, "--profile", "missing")
	assert.Error(t, err)
}
