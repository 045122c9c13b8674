package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionPrintsBuildVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestSayRemembersTasksAcrossTurns(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(),
		"say", "add task: buy milk", "remind me to call mom", "what are my tasks?",
	)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Contains(t, stdout, "• buy milk")
	assert.Contains(t, stdout, "• call mom")
}

func TestSayJSONOutput(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(),
		"say", "--json", "--summary", "take a note: meeting at 3pm", "tell me a joke",
	)
	require.NoError(t, err)
	require.True(t, json.Valid([]byte(stdout)))

	var result sayResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	require.Len(t, result.Replies, 2)
	assert.Equal(t, "add_note", result.Replies[0].Intent)
	assert.Equal(t, "meeting at 3pm", result.Replies[0].Entity)
	assert.Equal(t, "tell_joke", result.Replies[1].Intent)
	assert.NotEmpty(t, result.Replies[1].Joke)

	require.NotNil(t, result.Memory)
	assert.Equal(t, []string{"meeting at 3pm"}, result.Memory.Notes)
	assert.Equal(t, []string{result.Replies[1].Joke}, result.Memory.Jokes)
	assert.Equal(t, 2, result.Memory.Turns)
}

func TestSaySummaryRendersMemory(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "say", "--summary", "add task: water plants")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Companion Memory")
	assert.Contains(t, stdout, "• water plants")
}

func TestSayUsesConfiguredLocale(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeConfigFixture(home, "[locale]\ndefault = \"ta-IN\"\n\n[engine]\nseed = 3\n"))

	stdout, _, err := executeCLI(t, home, "say", "--json", "hello")
	require.NoError(t, err)
	assert.Contains(t, stdout, "\"locale\": \"ta-IN\"")
	assert.Contains(t, stdout, "\"intent\": \"greeting\"")
}

func TestSayLocaleFlagOverridesConfig(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeConfigFixture(home, "[locale]\ndefault = \"ta-IN\"\n"))

	stdout, _, err := executeCLI(t, home, "--locale", "en-gb", "say", "--json", "help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "\"locale\": \"en-GB\"")
}

func TestSayRejectsUnsupportedLocale(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "--locale", "fr-FR", "say", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported locale")
}

func TestSayRequiresAnUtterance(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "say")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg")
}

func TestSaySpeaksWhenEnabled(t *testing.T) {
	t.Setenv("COMPANION_SPEECH_ENABLED", "true")

	_, stderr, err := executeCLI(t, t.TempDir(), "say", "add task: buy milk")
	require.NoError(t, err)
	assert.Contains(t, stderr, "[SPEAK en-US]")
	assert.Contains(t, stderr, "buy milk")
}

func TestSayAppliesBundleOverlay(t *testing.T) {
	home := t.TempDir()
	overlay := filepath.Join(home, "overlay.yaml")
	require.NoError(t, os.WriteFile(overlay, []byte(`version: 1
locales:
  - locale: en-US
    responses:
      small_talk:
        - "Echo: {utterance}"
`), 0o644))

	stdout, _, err := executeCLI(t, home, "--bundle", overlay, "say", "the sky is blue")
	require.NoError(t, err)
	assert.Equal(t, "Echo: the sky is blue\n", stdout)
}

func TestChatLoop(t *testing.T) {
	stdout, _, err := executeCLIWithInput(t, t.TempDir(),
		"hello\nadd task: buy milk\n/memory\n/quit\nnever read\n",
		"chat",
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "> ")
	assert.Contains(t, stdout, "Companion Memory")
	assert.Contains(t, stdout, "• buy milk")
	assert.NotContains(t, stdout, "never read")
}

func TestChatEndsOnEOF(t *testing.T) {
	stdout, _, err := executeCLIWithInput(t, t.TempDir(), "switch to tamil\n", "chat")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(stdout, "> \n"))
}

func TestBundleValidate(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "bundle", "validate")
	require.NoError(t, err)
	assert.Equal(t, "bundle ok: 4 locales\n", stdout)
}

func TestBundleValidateReportsBadPattern(t *testing.T) {
	home := t.TempDir()
	bad := filepath.Join(home, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte(`version = 1

[[locales]]
locale = "en-GB"

[locales.extract]
add_task = ['add task .+']
`), 0o644))

	_, _, err := executeCLI(t, home, "bundle", "validate", "--file", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one group")
}

func TestBundleLocales(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "bundle", "locales")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "LOCALE")
	assert.Contains(t, lines[1], "en-US")
	assert.Contains(t, lines[2], "en-GB")
	assert.Contains(t, lines[2], "en-US")
	assert.Contains(t, lines[4], "ta-LK")
	assert.Contains(t, lines[4], "ta-IN")
}

func TestBundleDumpYAML(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "bundle", "dump", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "locale: en-US")
	assert.Contains(t, stdout, "locale: ta-LK")
}

func TestBundleDumpRejectsUnknownFormat(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "bundle", "dump", "--format", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported bundle format")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	return executeCLIWithInput(t, home, "", args...)
}

func executeCLIWithInput(t *testing.T, home, input string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetIn(strings.NewReader(input))
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfigFixture(home, body string) error {
	configDir := filepath.Join(home, ".companion")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(body), 0o644)
}
