package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/systmms/officemru/internal/config"
	"github.com/systmms/officemru/internal/logging"
	"github.com/systmms/officemru/internal/office"
	"github.com/systmms/officemru/pkg/store"
	"github.com/systmms/officemru/tests/fakes"
)

// withFakeStore swaps the platform store for a fake for one test.
func withFakeStore(t *testing.T, st store.Store) {
	t.Helper()
	prev := platformStore
	platformStore = func() store.Store { return st }
	t.Cleanup(func() { platformStore = prev })
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Path:   filepath.Join(t.TempDir(), "officemru.yaml"),
		Logger: logging.New(false, true),
	}
}

func captureOutput(t *testing.T, cmd *cobra.Command, args []string) string {
	t.Helper()

	// Capture stdout
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// Set args and execute
	if args != nil {
		cmd.SetArgs(args)
	}

	err := cmd.Execute()
	if err != nil {
		_ = w.Close()
		os.Stdout = old
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		t.Logf("Command output before error: %s", buf.String())
		require.NoError(t, err)
	}

	// Restore stdout and read output
	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestResolveCommand(t *testing.T) {
	base := office.RecentTemplatesKey("15.0", office.Word)
	withFakeStore(t, fakes.NewFakeStore().WithChildren(base, "ADAL_9f3e"))

	cmd := NewResolveCommand(testConfig(t))
	output := captureOutput(t, cmd, []string{"--app", "word", "--auth", "adal"})

	assert.Equal(t, base+`\ADAL_9f3e\File MRU`+"\n", output)
}

func TestResolveCommandDefaultPath(t *testing.T) {
	withFakeStore(t, fakes.NewFakeStore())

	cmd := NewResolveCommand(testConfig(t))
	output := captureOutput(t, cmd, []string{"--app", "powerpoint", "--auth", "liveid"})

	assert.Equal(t,
		`HKCU\Software\Microsoft\Office\16.0\PowerPoint\Recent Templates\File MRU`+"\n",
		output)
}

func TestResolveCommandUnknownApp(t *testing.T) {
	withFakeStore(t, fakes.NewFakeStore())

	cmd := NewResolveCommand(testConfig(t))
	cmd.SetArgs([]string{"--app", "outlook", "--auth", "adal"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown application")
}

func TestResolveCommandUnknownAuthMode(t *testing.T) {
	withFakeStore(t, fakes.NewFakeStore())

	cmd := NewResolveCommand(testConfig(t))
	cmd.SetArgs([]string{"--app", "word", "--auth", "oauth"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown authentication mode")
}

func TestContainersCommandJSON(t *testing.T) {
	withFakeStore(t, fakes.NewFakeStore().
		WithChildren(office.RecentTemplatesKey("16.0", office.Word), "ADAL_a", "LIVEID_b"))

	cmd := NewContainersCommand(testConfig(t))
	output := captureOutput(t, cmd, []string{"--json"})

	var entries []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(output), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "Word", entries[0]["application"])
	assert.Equal(t, "enterprise-directory", entries[0]["kind"])
	assert.Equal(t, true, entries[0]["primary"])
	assert.Equal(t, "consumer-identity", entries[1]["kind"])
	assert.Equal(t, false, entries[1]["primary"])
}

func TestPathsCommand(t *testing.T) {
	base := office.RecentTemplatesKey("16.0", office.Excel)
	withFakeStore(t, fakes.NewFakeStore().WithChildren(base, "ADAL_e"))

	cmd := NewPathsCommand(testConfig(t))
	output := captureOutput(t, cmd, []string{"--app", "excel"})

	assert.Equal(t, `"`+base+`\ADAL_e"`+"\n", output)
}

func TestPrimaryCommand(t *testing.T) {
	base := office.RecentTemplatesKey("16.0", office.Word)
	withFakeStore(t, fakes.NewFakeStore().WithChildren(base, "ADAL_a"))

	cmd := NewPrimaryCommand(testConfig(t))
	output := captureOutput(t, cmd, nil)

	assert.Equal(t, "ADAL_a\t"+base+`\ADAL_a`+"\n", output)
}

func TestMRUCommand(t *testing.T) {
	base := office.RecentTemplatesKey("16.0", office.Word)
	mruPath := base + `\ADAL_a\File MRU`
	withFakeStore(t, fakes.NewFakeStore().
		WithChildren(base, "ADAL_a").
		WithValue(mruPath, "Item 1", `[F0]*C:\t\first.dotx`))

	cmd := NewMRUCommand(testConfig(t))
	output := captureOutput(t, cmd, []string{"--app", "word", "--auth", "adal"})

	assert.Equal(t, "1\tC:\\t\\first.dotx\n", output)
}

func TestTemplatesCommand(t *testing.T) {
	withFakeStore(t, fakes.NewFakeStore().
		WithValue(store.JoinKey(office.BaseKey, "16.0", "Word", "Options"),
			"PersonalTemplates", `D:\Templates\Word`))

	cmd := NewTemplatesCommand(testConfig(t))
	output := captureOutput(t, cmd, []string{"--app", "word"})

	assert.Equal(t, "D:\\Templates\\Word\n", output)
}

func TestAliasFlagWins(t *testing.T) {
	withFakeStore(t, fakes.NewFakeStore())

	cmd := NewResolveCommand(testConfig(t))
	output := captureOutput(t, cmd, []string{"--app", "word", "--alias", "excel", "--auth", "adal"})

	assert.True(t, strings.Contains(output, `\Excel\`), "alias should win: %s", output)
}
