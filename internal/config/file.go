package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// TransitionFile configures one enter or exit transition.
type TransitionFile struct {
	Effects    string `yaml:"effects"`
	DurationMS int    `yaml:"duration_ms"`
	Easing     string `yaml:"easing"`
}

func (t TransitionFile) Duration() time.Duration {
	return time.Duration(t.DurationMS) * time.Millisecond
}

// File is the on-disk configuration. Keys missing from the YAML keep
// their Default values.
type File struct {
	DurationMS              int            `yaml:"duration_ms"`
	Position                string         `yaml:"position"`
	Theme                   string         `yaml:"theme"`
	Enter                   TransitionFile `yaml:"enter"`
	Exit                    TransitionFile `yaml:"exit"`
	ProgressColor           string         `yaml:"progress_color"`
	ProgressBackgroundColor string         `yaml:"progress_background_color"`
	PanelColor              string         `yaml:"panel_color"`
	TextColor               string         `yaml:"text_color"`
	ShowProgress            bool           `yaml:"show_progress"`
	DisableSplash           bool           `yaml:"disable_splash"`
	Markdown                bool           `yaml:"markdown"`
	Content                 string         `yaml:"content"`
}

const defaultContent = "Nulla quis lorem ut libero malesuada feugiat. Sed ut perspiciatis unde " +
	"omnis iste natus error sit voluptatem accusantium doloremque laudantium, totam rem " +
	"aperiam, eaque ipsa quae ab illo inventore veritatis et quasi architecto beatae vitae " +
	"dicta sunt explicabo."

// Default mirrors the demo screen: a three second dialog that slides and
// fades in at the top of the screen.
func Default() File {
	return File{
		DurationMS: int(DefaultDuration / time.Millisecond),
		Position:   "top-center",
		Theme:      "default",
		Enter: TransitionFile{
			Effects:    "slide+fade",
			DurationMS: int(DefaultTransitionDuration / time.Millisecond),
			Easing:     "fast-out-slow-in",
		},
		Exit: TransitionFile{
			Effects:    "slide+fade",
			DurationMS: int(DefaultTransitionDuration / time.Millisecond),
			Easing:     "fast-out-slow-in",
		},
		ShowProgress: true,
		Markdown:     true,
		Content:      defaultContent,
	}
}

func (f File) Duration() time.Duration {
	return time.Duration(f.DurationMS) * time.Millisecond
}

func (f File) Validate() error {
	if f.DurationMS <= 0 {
		return fmt.Errorf("%w: duration_ms %d", ErrInvalidDuration, f.DurationMS)
	}
	if f.Enter.DurationMS < 0 {
		return fmt.Errorf("%w: enter.duration_ms %d", ErrInvalidTransition, f.Enter.DurationMS)
	}
	if f.Exit.DurationMS < 0 {
		return fmt.Errorf("%w: exit.duration_ms %d", ErrInvalidTransition, f.Exit.DurationMS)
	}
	return nil
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (File, error) {
	f := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return f, nil
		}
		return f, &LoadError{Path: path, Err: err}
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Default(), &LoadError{Path: path, Err: err}
	}
	if err := f.Validate(); err != nil {
		return Default(), &LoadError{Path: path, Err: err}
	}
	return f, nil
}
