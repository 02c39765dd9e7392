package colors

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

// capture redirects stdout and stderr into buffers for the duration of the test.
func capture(t *testing.T) (out, errOut *bytes.Buffer) {
	t.Helper()
	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}
	oldOut, oldErr := stdout, stderr
	stdout = func() io.Writer { return out }
	stderr = func() io.Writer { return errOut }
	t.Cleanup(func() {
		stdout, stderr = oldOut, oldErr
	})
	return out, errOut
}

type recordingLogger struct {
	entries []string
}

func (r *recordingLogger) Debug(msg string, args ...any) { r.entries = append(r.entries, "debug:"+msg) }
func (r *recordingLogger) Info(msg string, args ...any)  { r.entries = append(r.entries, "info:"+msg) }
func (r *recordingLogger) Warn(msg string, args ...any)  { r.entries = append(r.entries, "warn:"+msg) }
func (r *recordingLogger) Error(msg string, args ...any) { r.entries = append(r.entries, "error:"+msg) }

func TestError(t *testing.T) {
	_, errOut := capture(t)

	Error("something went wrong")

	assert.Contains(t, errOut.String(), "Error:")
	assert.Contains(t, errOut.String(), "something went wrong")
	assert.Contains(t, errOut.String(), Red)
}

func TestSuccess(t *testing.T) {
	out, _ := capture(t)

	Success("operation completed")

	assert.Contains(t, out.String(), "✓")
	assert.Contains(t, out.String(), "operation completed")
	assert.Contains(t, out.String(), Green)
}

func TestWarning(t *testing.T) {
	_, errOut := capture(t)

	Warning("this is a warning")

	assert.Contains(t, errOut.String(), "Warning:")
	assert.Contains(t, errOut.String(), Yellow)
}

func TestInfoAndLogInfo(t *testing.T) {
	out, errOut := capture(t)

	Info("multiple", "arguments", "joined")
	LogInfo("log message")

	assert.Contains(t, out.String(), "multiple arguments joined")
	assert.Contains(t, out.String(), Blue)
	assert.Contains(t, errOut.String(), "log message")
	assert.NotContains(t, out.String(), "log message")
}

func TestDebug(t *testing.T) {
	_, errOut := capture(t)

	SetDebug(false)
	Debug("hidden")
	assert.Empty(t, errOut.String())

	SetDebug(true)
	defer SetDebug(false)
	Debug("debug message")
	assert.Contains(t, errOut.String(), "Debug:")
	assert.Contains(t, errOut.String(), Cyan)
}

func TestQuietSuppressesInfo(t *testing.T) {
	out, errOut := capture(t)
	SetQuiet(true)
	defer SetQuiet(false)

	Info("info")
	Success("done")
	Warning("still shown")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "still shown")
}

func TestLoggerMirrorsOutput(t *testing.T) {
	capture(t)
	rec := &recordingLogger{}
	SetLogger(rec)
	defer SetLogger(nil)

	Error("e")
	Warning("w")
	Info("i")
	Success("s")

	assert.Equal(t, []string{"error:e", "warn:w", "info:i", "info:s"}, rec.entries)
}
