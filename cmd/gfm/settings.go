package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"go.uber.org/automaxprocs/maxprocs"

	gfm "github.com/alnah/go-gfm"
	"github.com/alnah/go-gfm/internal/assets"
	"github.com/alnah/go-gfm/internal/config"
	"github.com/alnah/go-gfm/internal/fileutil"
	"github.com/alnah/go-gfm/internal/logging"
)

// session bundles the resolved settings and logger of one command run.
type session struct {
	cfg    *config.Config
	logger *log.Logger
}

// newSession resolves settings for a command. Sources are applied in
// order: defaults, settings file, overlay, environment, and finally the
// log flags. Command specific flags are merged by the caller.
func newSession(f *commonFlags, env *Environment) (*session, error) {
	ev := loadEnvConfig(env.Getenv)

	level, err := resolveLogLevel(f, ev.LogLevel)
	if err != nil {
		return nil, wrapUsage(err)
	}
	logger := logging.NewWithWriter(env.Stderr, level)
	warnUnknownEnvVars(logger, env.Environ())

	cfg, err := loadConfig(firstNonEmpty(f.configDir, ev.ConfigDir), firstNonEmpty(f.env, ev.Env), logger)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	applyEnvConfig(ev, cfg)

	// Flags beat every other source; without them the configured level applies.
	if flagLevel(f) != "" {
		cfg.Log.Level = level
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	lvl, _ := logging.ParseLevel(cfg.Log.Level)
	logger.SetLevel(lvl)
	logging.SetDefault(logger)

	configureMaxprocs(logger)
	return &session{cfg: cfg, logger: logger}, nil
}

// loadConfig returns the defaults when neither a directory nor an
// environment is named and no settings file sits in the working directory.
func loadConfig(dir, envName string, logger *log.Logger) (*config.Config, error) {
	if dir == "" && envName == "" {
		if !fileutil.FileExists(config.SettingsFile) {
			logger.Debug("no settings file, using defaults")
			return config.DefaultConfig(), nil
		}
	}
	return config.Init(dir, envName, logger)
}

// flagLevel returns the level requested on the command line, if any.
// --log-level beats -q, which beats -v.
func flagLevel(f *commonFlags) string {
	switch {
	case f.logLevel != "":
		return f.logLevel
	case f.quiet:
		return logging.LevelError
	case f.verbose:
		return logging.LevelDebug
	}
	return ""
}

// resolveLogLevel picks the bootstrap level used while settings load.
func resolveLogLevel(f *commonFlags, envLevel string) (string, error) {
	level := firstNonEmpty(flagLevel(f), envLevel, logging.LevelInfo)
	if _, err := logging.ParseLevel(level); err != nil {
		return "", err
	}
	return level, nil
}

// configureMaxprocs aligns GOMAXPROCS with the container CPU quota.
func configureMaxprocs(logger *log.Logger) {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		logger.Debugf(format, args...)
	}))
}

// rendererConfig maps file settings onto renderer options.
func rendererConfig(cfg *config.Config) gfm.RendererConfig {
	return gfm.RendererConfig{
		EscapeHTML:     cfg.Renderer.EscapeHTML,
		XHTML:          cfg.Renderer.XHTML,
		HighlightClass: cfg.Renderer.HighlightClass,
		HighlightStyle: cfg.Renderer.HighlightStyle,
		Tables:         cfg.Renderer.Tables,
		Strikethrough:  cfg.Renderer.Strikethrough,
	}
}

// newRenderer builds the renderer for the session settings.
func (s *session) newRenderer() (*gfm.Renderer, error) {
	return gfm.NewRenderer(
		gfm.WithRendererConfig(rendererConfig(s.cfg)),
		gfm.WithLogger(s.logger),
	)
}

// pageStyle loads the configured page style. An empty name yields no CSS.
func (s *session) pageStyle() (string, error) {
	name := s.cfg.Output.Style
	if name == "" {
		return "", nil
	}

	resolver, err := assets.NewStyleResolver(s.cfg.Output.StyleDir)
	if err != nil {
		return "", err
	}
	css, err := resolver.LoadStyle(name)
	if err != nil {
		return "", err
	}
	s.logger.Debug("loaded page style", logging.FieldStyle, name, "custom_dir", resolver.HasCustomLoader())
	return css, nil
}

// documentCSS returns the CSS embedded in standalone documents: the page
// style followed by the highlight stylesheet.
func (s *session) documentCSS(r *gfm.Renderer) (string, error) {
	page, err := s.pageStyle()
	if err != nil {
		return "", err
	}
	if !s.cfg.Output.Stylesheet {
		return page, nil
	}

	highlight, err := r.Stylesheet()
	if err != nil {
		return "", err
	}
	if page == "" {
		return highlight, nil
	}
	return page + "\n" + highlight, nil
}

// mergeStyleFlags applies page style flags on top of cfg.
func mergeStyleFlags(f *styleFlags, cfg *config.Config) {
	if f.style != "" {
		cfg.Output.Style = f.style
	}
	if f.styleDir != "" {
		cfg.Output.StyleDir = f.styleDir
	}
	if f.noStyle {
		cfg.Output.Style = ""
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
