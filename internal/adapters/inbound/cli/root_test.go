package cli_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mediacheck/mediacheck/internal/adapters/inbound/cli"
	"github.com/mediacheck/mediacheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env struct {
	root   string
	logDir string
	config string
}

func newEnv(t *testing.T, extraConfig string) env {
	t.Helper()
	e := env{root: t.TempDir(), logDir: t.TempDir()}
	e.config = filepath.Join(t.TempDir(), "mediacheck.yaml")
	cfg := "log_dir: " + e.logDir + "\ncolor: never\nffprobe_path: definitely-not-ffprobe-binary\n" + extraConfig
	require.NoError(t, os.WriteFile(e.config, []byte(cfg), 0644))
	return e
}

func (e env) write(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(e.root, name)
	require.NoError(t, os.WriteFile(p, data, 0644))
	return p
}

func (e env) logText(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(e.logDir, name+".log"))
	require.NoError(t, err)
	return string(data)
}

func pngData(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.Set(2, 2, color.NRGBA{B: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCmd_ScansDirectory(t *testing.T) {
	e := newEnv(t, "")
	good := e.write(t, "a.png", pngData(t))
	bad := e.write(t, "b.png", nil)
	e.write(t, "e.txt", []byte("notes"))

	stdout, _, err := execute(t, e.root, "--config", e.config)
	require.NoError(t, err)

	assert.Equal(t, e.logText(t, "mediacheck"), stdout)
	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "program started")
	assert.Contains(t, stdout, "success: "+good+" can be opened normally")
	assert.Contains(t, stdout, "failed: "+bad+" cannot be opened")
	assert.NotContains(t, stdout, "e.txt")
	assert.Contains(t, lines[3], "program finished")
}

func TestRootCmd_VideoWithoutFfprobeIsReportedNotFatal(t *testing.T) {
	e := newEnv(t, "")
	clip := e.write(t, "c.mp4", []byte("stub"))
	anim := e.write(t, "d.gif", []byte("stub"))

	stdout, stderr, err := execute(t, e.root, "--config", e.config)
	require.NoError(t, err)
	assert.Contains(t, stdout, "failed: "+clip+" error while opening: ffprobe not found on PATH")
	assert.Contains(t, stdout, "failed: "+anim+" error while opening: ffprobe not found on PATH")
	assert.Contains(t, stderr, "ffprobe not found")
}

func TestRootCmd_EmptyDirectoryWritesBanners(t *testing.T) {
	e := newEnv(t, "")

	stdout, _, err := execute(t, e.root, "--config", e.config)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(stdout, "\n"))
}

func TestRootCmd_ConfigLocaleAndLogName(t *testing.T) {
	e := newEnv(t, "locale: zh-TW\nlog_name: archive\nlog_skipped: true\n")
	e.write(t, "a.png", pngData(t))
	e.write(t, "e.txt", []byte("notes"))

	stdout, _, err := execute(t, e.root, "--config", e.config)
	require.NoError(t, err)
	assert.Contains(t, stdout, "程式啟動")
	assert.Contains(t, stdout, "可正常開啟")
	assert.Contains(t, stdout, "skipped: ")
	assert.Equal(t, stdout, e.logText(t, "archive"))
}

func TestRootCmd_InvalidRootKeepsPreviousLog(t *testing.T) {
	e := newEnv(t, "")
	require.NoError(t, os.WriteFile(filepath.Join(e.logDir, "mediacheck.log"), []byte("previous run\n"), 0644))

	_, _, err := execute(t, filepath.Join(e.root, "missing"), "--config", e.config)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRoot))
	assert.Equal(t, "previous run\n", e.logText(t, "mediacheck"))
}

func TestRootCmd_RequiresExactlyOneRoot(t *testing.T) {
	_, _, err := execute(t)
	assert.Error(t, err)

	_, _, err = execute(t, "a", "b")
	assert.Error(t, err)
}

func TestRootCmd_MissingConfigFile(t *testing.T) {
	_, _, err := execute(t, t.TempDir(), "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "mediacheck.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("color: rainbow\n"), 0644))

	_, _, err := execute(t, t.TempDir(), "--config", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown color")
}

func TestRootCmd_Version(t *testing.T) {
	stdout, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "mediacheck dev (none)\n", stdout)
}

func TestRootCmd_VerboseWritesDiagnosticsToStderr(t *testing.T) {
	e := newEnv(t, "")
	e.write(t, "a.png", pngData(t))

	stdout, stderr, err := execute(t, e.root, "--config", e.config, "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "scan finished")
	assert.NotContains(t, stdout, "scan finished")
}
