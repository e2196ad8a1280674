package scene

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)

	require.Equal(t, 800, s.Window.Width)
	require.Equal(t, 600, s.Window.Height)
	require.Equal(t, "collision-detect", s.Window.Title)
	require.Equal(t, 20.0, s.Step)
	require.Equal(t, color.RGBA{A: 0xff}, s.BackgroundColor())
	require.Len(t, s.Bodies, 2)
	require.Equal(t, BodySpec{Name: "arrows", Texture: "media/tex0.png"}, s.Bodies[0])
	require.Equal(t, BodySpec{Name: "wasd", Texture: "media/tex1.png", X: 500, Y: 400}, s.Bodies[1])
}

func TestLoadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte(`
step: 8
bodies:
  - texture: a.png
  - texture: b.png
    x: 1
    y: 2
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 8.0, s.Step)
	require.Equal(t, 800, s.Window.Width, "unset window keeps defaults")
	require.Equal(t, 1.0, s.Bodies[1].X)
	require.Equal(t, KeyRepeatSpec{Delay: 30, Interval: 3}, s.KeyRepeat, "unset key_repeat keeps defaults")
}

func TestParseKeyRepeat(t *testing.T) {
	cases := []struct {
		name string
		data string
		want KeyRepeatSpec
	}{
		{"absent", "bodies:\n  - texture: a.png\n  - texture: b.png\n", KeyRepeatSpec{Delay: 30, Interval: 3}},
		{"partial", "key_repeat:\n  delay: 10\nbodies:\n  - texture: a.png\n  - texture: b.png\n", KeyRepeatSpec{Delay: 10, Interval: 3}},
		{"disabled", "key_repeat:\n  delay: 0\nbodies:\n  - texture: a.png\n  - texture: b.png\n", KeyRepeatSpec{Delay: 0, Interval: 3}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := Parse([]byte(c.data))
			require.NoError(t, err)
			require.Equal(t, c.want, s.KeyRepeat)
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("does-not-exist.yaml")
	require.Error(t, err)
}

func TestParseValidation(t *testing.T) {
	cases := []struct {
		name    string
		data    string
		wantErr error
		errText string
	}{
		{
			name:    "one_body",
			data:    "bodies:\n  - texture: a.png\n",
			wantErr: ErrNoBodies,
		},
		{
			name:    "zero_step",
			data:    "step: 0\nbodies:\n  - texture: a.png\n  - texture: b.png\n",
			wantErr: ErrInvalidStep,
		},
		{
			name:    "nan_step",
			data:    "step: .nan\nbodies:\n  - texture: a.png\n  - texture: b.png\n",
			wantErr: ErrInvalidStep,
		},
		{
			name:    "inf_step",
			data:    "step: .inf\nbodies:\n  - texture: a.png\n  - texture: b.png\n",
			wantErr: ErrInvalidStep,
		},
		{
			name:    "nan_position",
			data:    "bodies:\n  - texture: a.png\n    x: .nan\n  - texture: b.png\n",
			wantErr: ErrInvalidPosition,
		},
		{
			name:    "inf_position",
			data:    "bodies:\n  - texture: a.png\n  - texture: b.png\n    y: -.inf\n",
			wantErr: ErrInvalidPosition,
		},
		{
			name:    "bad_window",
			data:    "window:\n  width: -1\nbodies:\n  - texture: a.png\n  - texture: b.png\n",
			wantErr: ErrInvalidWindow,
		},
		{
			name:    "missing_texture",
			data:    "bodies:\n  - name: first\n    texture: a.png\n  - name: second\n",
			errText: "has no texture",
		},
		{
			name:    "bad_color",
			data:    "background: purple\nbodies:\n  - texture: a.png\n  - texture: b.png\n",
			errText: "invalid color",
		},
		{
			name:    "bad_yaml",
			data:    "bodies: [",
			errText: "unmarshal",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.data))
			require.Error(t, err)
			if c.wantErr != nil {
				require.ErrorIs(t, err, c.wantErr)
			}
			if c.errText != "" {
				require.ErrorContains(t, err, c.errText)
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
	}{
		{"#000000", color.RGBA{A: 0xff}},
		{"#ff8000", color.RGBA{R: 0xff, G: 0x80, A: 0xff}},
		{"10203040", color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := parseHexColor(c.in)
			require.NoError(t, err)
			require.Equal(t, c.want, got)
		})
	}

	_, err := parseHexColor("#zzzzzz")
	require.Error(t, err)
}
