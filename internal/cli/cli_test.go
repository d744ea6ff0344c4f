package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mordilloSan/termlog/logger"
)

// testEnv holds a config file and log path inside a temp dir.
type testEnv struct {
	dir     string
	config  string
	logFile string
}

func newTestEnv(t *testing.T, mutate func(*logger.Config)) testEnv {
	t.Helper()
	dir := t.TempDir()
	env := testEnv{
		dir:     dir,
		config:  filepath.Join(dir, "config.json"),
		logFile: filepath.Join(dir, "logs", "log.txt"),
	}
	cfg := logger.DefaultConfig()
	cfg.LogFile = env.logFile
	if mutate != nil {
		mutate(&cfg)
	}
	require.NoError(t, logger.WriteConfigFile(env.config, cfg))
	return env
}

func newTestApp(t *testing.T, args ...string) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	app := NewApp(args, &out)
	app.sleep = func(context.Context, time.Duration) error { return nil }
	return app, &out
}

func (e testEnv) args(rest ...string) []string {
	return append([]string{"-c", e.config, "--color", "never"}, rest...)
}

func TestEarlyOptions(t *testing.T) {
	o := earlyOptions([]string{"demo", "--config", "x.yaml", "--unknown", "-h", "-v", "--log-file=out.txt"})

	assert.Equal(t, "x.yaml", o.configPath)
	assert.Equal(t, "out.txt", o.logFile)
	assert.True(t, o.verbose)
	assert.Equal(t, colorAuto, o.colorMode)
}

func TestNewApp_LoadsConfig(t *testing.T) {
	env := newTestEnv(t, func(c *logger.Config) { c.LogRotationSize = 1234 })

	app, out := newTestApp(t, env.args("version")...)

	assert.Equal(t, int64(1234), app.cfg.LogRotationSize)
	assert.Contains(t, out.String(), "[SUCCESS] ")
	assert.Contains(t, out.String(), "Configuration loaded successfully.")
}

func TestNewApp_MissingConfigFallsBack(t *testing.T) {
	app, out := newTestApp(t, "-c", filepath.Join(t.TempDir(), "nope.json"), "--color", "never")

	assert.Equal(t, logger.DefaultConfig(), app.cfg)
	assert.Contains(t, out.String(), "Error loading configuration:")
}

func TestNewApp_Overrides(t *testing.T) {
	env := newTestEnv(t, func(c *logger.Config) { c.LogLevels = map[string]bool{"DEBUG": false} })
	override := filepath.Join(env.dir, "other.txt")

	app, _ := newTestApp(t, env.args("--log-file", override, "-v", "version")...)

	assert.Equal(t, override, app.cfg.LogFile)
	assert.Equal(t, map[string]bool{"[DEBUG]": true}, app.cfg.LogLevels)
	assert.True(t, app.Logger().Enabled("[DEBUG]"))
}

func TestExecute_Help(t *testing.T) {
	env := newTestEnv(t, nil)
	app, out := newTestApp(t, env.args()...)

	require.NoError(t, app.Execute(context.Background()))
	assert.Contains(t, out.String(), "Quick Start:")
}

func TestExecute_InvalidColor(t *testing.T) {
	env := newTestEnv(t, nil)
	app, _ := newTestApp(t, "-c", env.config, "--color", "purple", "version")

	err := app.Execute(context.Background())
	assert.ErrorContains(t, err, `invalid --color "purple"`)
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t, nil)
	app, out := newTestApp(t, env.args("version")...)

	require.NoError(t, app.Execute(context.Background()))
	assert.Contains(t, out.String(), "termlog:")
	assert.Contains(t, out.String(), Version)
	assert.Contains(t, out.String(), env.config)
}

func TestDemo_ToFile(t *testing.T) {
	env := newTestEnv(t, nil)
	app, out := newTestApp(t, env.args("demo", "--no-clear", "--to-file", "--steps", "3", "--delay", "0s")...)

	require.NoError(t, app.Execute(context.Background()))

	console := out.String()
	assert.NotContains(t, console, "\033[H\033[2J")
	assert.Contains(t, console, "Starting the application.")
	assert.Contains(t, console, "[MYAPP NAME HERE] ")
	assert.Contains(t, console, "| 100.0% Complete\n")
	assert.NotContains(t, console, "Debugging information.")

	data, err := os.ReadFile(env.logFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 9)

	var tags []string
	for _, line := range lines {
		tags = append(tags, strings.SplitN(line, " ", 2)[0])
	}
	assert.Equal(t, []string{
		"[INFO]", "[INFO]", "[WARN]", "[ERROR]", "[SUCCESS]",
		"[FAILURE]", "[CRITICAL]", "[MYAPP", "[INFO]",
	}, tags)
	assert.Contains(t, lines[8], "Loaded configuration: log_file="+env.logFile)
	assert.NotContains(t, string(data), "\033[")
}

func TestDemo_ConsoleOnlyByDefault(t *testing.T) {
	env := newTestEnv(t, nil)
	app, out := newTestApp(t, env.args("demo", "--steps", "1", "--delay", "0s")...)

	require.NoError(t, app.Execute(context.Background()))

	assert.Contains(t, out.String(), "\033[H\033[2J")
	assert.Contains(t, out.String(), "Terminal cleared")
	assert.NoFileExists(t, env.logFile)
}

func TestDemo_Verbose(t *testing.T) {
	env := newTestEnv(t, nil)
	app, out := newTestApp(t, env.args("-v", "demo", "--no-clear", "--steps", "1", "--delay", "0s")...)

	require.NoError(t, app.Execute(context.Background()))

	assert.Contains(t, out.String(), "[DEBUG] ")
	assert.Contains(t, out.String(), "Debugging information.")
	assert.Contains(t, out.String(), "logging demonstration to_file=false")
	assert.Contains(t, out.String(), "Function 'demo' executed in ")
}

func TestDemo_CanceledDuringProgress(t *testing.T) {
	env := newTestEnv(t, nil)
	app, _ := newTestApp(t, env.args("demo", "--no-clear")...)
	app.sleep = sleepContext

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := app.Execute(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProgressCommand(t *testing.T) {
	env := newTestEnv(t, nil)
	app, out := newTestApp(t, env.args("progress", "--steps", "2", "--delay", "0s", "--width", "4", "--fill", "#")...)

	require.NoError(t, app.Execute(context.Background()))
	assert.True(t, strings.HasSuffix(out.String(),
		"\rProgress: |##--| 50.0% Complete\rProgress: |####| 100.0% Complete\n"))
}

func TestProgressCommand_FitWithoutTerminal(t *testing.T) {
	env := newTestEnv(t, nil)
	app, out := newTestApp(t, env.args("progress", "--steps", "1", "--delay", "0s", "--width", "0", "--fill", "#")...)

	require.NoError(t, app.Execute(context.Background()))
	assert.Contains(t, out.String(), "|"+strings.Repeat("#", 50)+"|")
}

func TestConfigShow(t *testing.T) {
	env := newTestEnv(t, func(c *logger.Config) { c.LogRotationSize = 777 })

	for format, want := range map[string]string{
		"json": `"log_rotation_size": 777`,
		"yaml": "log_rotation_size: 777",
		"toml": "log_rotation_size = 777",
	} {
		t.Run(format, func(t *testing.T) {
			app, out := newTestApp(t, env.args("config", "show", "--format", format)...)

			require.NoError(t, app.Execute(context.Background()))
			assert.Contains(t, out.String(), want)
		})
	}

	app, _ := newTestApp(t, env.args("config", "show", "-f", "ini")...)
	assert.Error(t, app.Execute(context.Background()))
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "termlog.yaml")
	args := []string{"-c", filepath.Join(dir, "missing.json"), "--color", "never", "config", "init", target}

	app, out := newTestApp(t, args...)
	require.NoError(t, app.Execute(context.Background()))
	assert.Contains(t, out.String(), "Default configuration written to "+target)

	got, err := logger.ReadConfig(target)
	require.NoError(t, err)
	assert.Equal(t, logger.DefaultConfig(), got)

	app, _ = newTestApp(t, args...)
	assert.ErrorContains(t, app.Execute(context.Background()), "already exists")

	app, _ = newTestApp(t, append(args, "--force")...)
	assert.NoError(t, app.Execute(context.Background()))
}

func TestMenuCommand_RequiresTerminal(t *testing.T) {
	env := newTestEnv(t, nil)
	app, _ := newTestApp(t, env.args("menu")...)
	app.tty = func() bool { return false }

	assert.ErrorContains(t, app.Execute(context.Background()), "not a terminal")
}

// scriptedReader replays lines, then returns err (io.EOF when nil).
type scriptedReader struct {
	lines   []string
	err     error
	prompts []string
}

func (r *scriptedReader) Readline() (string, error) {
	if len(r.lines) == 0 {
		if r.err != nil {
			return "", r.err
		}
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func (r *scriptedReader) SetPrompt(p string) {
	r.prompts = append(r.prompts, p)
}

func TestRunMenu(t *testing.T) {
	env := newTestEnv(t, nil)
	app, out := newTestApp(t, env.args()...)
	var slept []time.Duration
	app.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}
	in := &scriptedReader{lines: []string{"1", "", "3", "", " 9 ", "2", "", "4"}}

	require.NoError(t, app.runMenu(context.Background(), in, time.Millisecond))

	console := out.String()
	assert.Contains(t, console, "==== "+menuTitle+" ====")
	assert.Contains(t, console, "==== Logging Demonstrations ====")
	assert.Contains(t, console, "[MYAPP] ")
	assert.Contains(t, console, "==== Display Configuration ====")
	assert.Contains(t, console, `"log_file": "`+env.logFile+`"`)
	assert.Contains(t, console, "Invalid choice. Please enter a number between 1 and 4.")
	assert.Contains(t, console, "==== Progress Bar Demonstration ====")
	assert.Contains(t, console, "| 100.0% Complete\n")
	assert.True(t, strings.HasSuffix(console, "Exiting the application. Goodbye!\n"))

	assert.Equal(t, time.Second, slept[0])
	assert.Len(t, slept, 11)
	assert.Contains(t, in.prompts, pausePrompt)
	assert.Empty(t, in.lines)
}

func TestRunMenu_EOFExits(t *testing.T) {
	env := newTestEnv(t, nil)
	app, _ := newTestApp(t, env.args()...)

	assert.NoError(t, app.runMenu(context.Background(), &scriptedReader{}, 0))
	assert.NoError(t, app.runMenu(context.Background(), &scriptedReader{lines: []string{"1"}}, 0))
}

func TestRunMenu_Interrupt(t *testing.T) {
	env := newTestEnv(t, nil)
	app, _ := newTestApp(t, env.args()...)

	err := app.runMenu(context.Background(), &scriptedReader{err: readline.ErrInterrupt}, 0)
	assert.ErrorIs(t, err, logger.ErrInterrupted)
	assert.Equal(t, logger.ExitInterrupt, logger.ExitCode(err))
}

func TestRunMenu_ReadError(t *testing.T) {
	env := newTestEnv(t, nil)
	app, _ := newTestApp(t, env.args()...)
	boom := errors.New("tty gone")

	err := app.runMenu(context.Background(), &scriptedReader{err: boom}, 0)
	assert.ErrorIs(t, err, boom)
}

func TestRunMenu_Canceled(t *testing.T) {
	env := newTestEnv(t, nil)
	app, _ := newTestApp(t, env.args()...)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := app.runMenu(ctx, &scriptedReader{lines: []string{"1"}}, 0)
	assert.ErrorIs(t, err, context.Canceled)
}
