package testutil

import (
	"time"

	"github.com/akyairhashvil/timedialog/internal/config"
)

// ConfigBuilder provides fluent API for creating test configurations.
type ConfigBuilder struct {
	cfg config.File
}

// NewConfig starts from config.Default.
func NewConfig() *ConfigBuilder {
	return &ConfigBuilder{cfg: config.Default()}
}

func (b *ConfigBuilder) WithDuration(d time.Duration) *ConfigBuilder {
	b.cfg.DurationMS = int(d / time.Millisecond)
	return b
}

func (b *ConfigBuilder) WithPosition(p string) *ConfigBuilder {
	b.cfg.Position = p
	return b
}

func (b *ConfigBuilder) WithTheme(name string) *ConfigBuilder {
	b.cfg.Theme = name
	return b
}

func (b *ConfigBuilder) WithProgressColor(c string) *ConfigBuilder {
	b.cfg.ProgressColor = c
	return b
}

func (b *ConfigBuilder) WithEnter(effects string, d time.Duration, easing string) *ConfigBuilder {
	b.cfg.Enter = transition(effects, d, easing)
	return b
}

func (b *ConfigBuilder) WithExit(effects string, d time.Duration, easing string) *ConfigBuilder {
	b.cfg.Exit = transition(effects, d, easing)
	return b
}

func (b *ConfigBuilder) WithPlainContent(text string) *ConfigBuilder {
	b.cfg.Content = text
	b.cfg.Markdown = false
	return b
}

func (b *ConfigBuilder) WithoutProgress() *ConfigBuilder {
	b.cfg.ShowProgress = false
	return b
}

func (b *ConfigBuilder) WithoutSplash() *ConfigBuilder {
	b.cfg.DisableSplash = true
	return b
}

func (b *ConfigBuilder) Build() config.File {
	return b.cfg
}

func transition(effects string, d time.Duration, easing string) config.TransitionFile {
	return config.TransitionFile{
		Effects:    effects,
		DurationMS: int(d / time.Millisecond),
		Easing:     easing,
	}
}
