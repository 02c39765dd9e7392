package player

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name     string
		template string
		url      string
		program  string
		args     []string
	}{
		{"placeholder", "mpv --no-video {url}", "https://a.example/s", "mpv", []string{"--no-video", "https://a.example/s"}},
		{"appended", "xdg-open", "https://a.example", "xdg-open", []string{"https://a.example"}},
		{"embedded", "vlc --url={url}", "https://a.example", "vlc", []string{"--url=https://a.example"}},
		{"trims url", "open {url}", "  https://a.example ", "open", []string{"https://a.example"}},
		{"quoted program", `"/opt/My Player/bin/play" {url}`, "https://a.example", "/opt/My Player/bin/play", []string{"https://a.example"}},
		{"single quoted arg", `mpv --title='Station Menu' {url}`, "https://a.example", "mpv", []string{"--title=Station Menu", "https://a.example"}},
		{"url kept whole", "mpv {url}", "https://a.example/s?x=1&y=2", "mpv", []string{"https://a.example/s?x=1&y=2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, args, err := Expand(tt.template, tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.program, program)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestExpandErrors(t *testing.T) {
	_, _, err := Expand("mpv {url}", " ")
	assert.ErrorIs(t, err, ErrEmptyURL)
	_, _, err = Expand("   ", "https://a.example")
	assert.ErrorIs(t, err, ErrEmptyCommand)
	_, _, err = Expand("{url}", "https://a.example")
	assert.ErrorIs(t, err, ErrEmptyCommand)
	_, _, err = Expand(`"/opt/My Player {url}`, "https://a.example")
	assert.Error(t, err, "unterminated quote")
}

func TestCommandPlayerOpen(t *testing.T) {
	runner := new(MockRunner)
	runner.On("Start", "mpv", []string{"--no-video", "https://a.example/s"}).Return(nil)

	p := NewCommandPlayer("internal", "mpv --no-video {url}", runner)
	require.NoError(t, p.Open("https://a.example/s"))
	assert.Equal(t, "internal", p.Name())
	runner.AssertExpectations(t)
}

func TestCommandPlayerOpenFailure(t *testing.T) {
	boom := errors.New("no such file")
	runner := new(MockRunner)
	runner.On("Start", "xdg-open", []string{"https://a.example"}).Return(boom)

	err := NewCommandPlayer("external", "xdg-open {url}", runner).Open("https://a.example")
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "external")
}

func TestCommandPlayerDoesNotStartWithoutURL(t *testing.T) {
	runner := new(MockRunner)
	err := NewCommandPlayer("internal", "mpv {url}", runner).Open("")
	require.ErrorIs(t, err, ErrEmptyURL)
	runner.AssertNotCalled(t, "Start")
}

func TestNMMeterSettingOverrides(t *testing.T) {
	runner := new(MockRunner)

	metered, err := NMMeter{Setting: "true", Runner: runner}.Metered(context.Background())
	require.NoError(t, err)
	assert.True(t, metered)

	metered, err = NMMeter{Setting: "FALSE", Runner: runner}.Metered(context.Background())
	require.NoError(t, err)
	assert.False(t, metered)

	runner.AssertNotCalled(t, "Run")
}

func TestNMMeterAsksNmcli(t *testing.T) {
	args := []string{"-t", "-f", "GENERAL.METERED", "device", "show"}
	tests := []struct {
		name   string
		stdout string
		want   bool
	}{
		{"metered", "GENERAL.METERED:no\nGENERAL.METERED:yes\n", true},
		{"guessed", "GENERAL.METERED:yes (guessed)\n", true},
		{"not metered", "GENERAL.METERED:no\nGENERAL.METERED:unknown\n", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := new(MockRunner)
			runner.On("Run", "nmcli", args).Return(tt.stdout, "", nil)

			metered, err := NMMeter{Setting: "auto", Runner: runner}.Metered(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, metered)
			runner.AssertExpectations(t)
		})
	}
}

func TestNMMeterUnavailable(t *testing.T) {
	runner := new(MockRunner)
	runner.On("Run", "nmcli", []string{"-t", "-f", "GENERAL.METERED", "device", "show"}).
		Return("", "", errors.New("executable file not found"))

	metered, err := NMMeter{Setting: "auto", Runner: runner}.Metered(context.Background())
	require.ErrorIs(t, err, ErrMeterUnavailable)
	assert.False(t, metered)
}

func TestClipboardShare(t *testing.T) {
	var got string
	c := &Clipboard{write: func(s string) error { got = s; return nil }}
	require.NoError(t, c.Share("Jazz FM https://jazz.example"))
	assert.Equal(t, "Jazz FM https://jazz.example", got)

	c = &Clipboard{write: func(string) error { return errors.New("no xclip") }}
	assert.ErrorContains(t, c.Share("x"), "no xclip")
}

func TestExecRunnerRun(t *testing.T) {
	r := NewExecRunner(WithTimeout(0))
	assert.Equal(t, DefaultTimeout, r.timeout, "non-positive timeouts are ignored")

	_, _, err := r.Run(context.Background(), "station-menu-definitely-missing-binary")
	assert.Error(t, err)
	assert.Error(t, r.Start("station-menu-definitely-missing-binary"))
}
