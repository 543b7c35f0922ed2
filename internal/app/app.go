// Package app wires the declarations loader, the resolver, the renderers,
// the launcher and the file watcher into the operations exposed by the
// envjson command.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-envjson/internal/config"
	"github.com/MKhiriev/go-envjson/internal/converter"
	"github.com/MKhiriev/go-envjson/internal/expr"
	"github.com/MKhiriev/go-envjson/internal/logger"
	"github.com/MKhiriev/go-envjson/internal/output"
	"github.com/MKhiriev/go-envjson/internal/resolver"
	"github.com/MKhiriev/go-envjson/models"
)

// App runs resolution passes with one tool configuration.
type App struct {
	cfg      *config.StructuredConfig
	loader   ConfigLoader
	launcher Launcher
	watcher  FileWatcher
	resolver *resolver.Resolver
	renderer output.Renderer
	logger   *logger.Logger

	// environment every pass starts from
	environ []string
}

// Option configures an App.
type Option func(*App)

// WithEnviron replaces the process environment snapshot every pass starts
// from.
func WithEnviron(environ []string) Option {
	return func(a *App) {
		a.environ = environ
	}
}

// WithWatcher sets the watcher used by Watch.
func WithWatcher(w FileWatcher) Option {
	return func(a *App) {
		a.watcher = w
	}
}

// WithLauncher sets the launcher used by Exec.
func WithLauncher(l Launcher) Option {
	return func(a *App) {
		a.launcher = l
	}
}

// New builds an App. funcs are made available to function-typed variables
// by name.
func New(cfg *config.StructuredConfig, loader ConfigLoader, log *logger.Logger, funcs converter.Functions, opts ...Option) (*App, error) {
	if log == nil {
		log = logger.Nop()
	}

	renderer, err := output.NewRenderer(cfg.Output.Format, cfg.Output.All)
	if err != nil {
		return nil, fmt.Errorf("error creating renderer: %w", err)
	}

	var resolverOpts []resolver.Option
	if cfg.Resolver.SyncProcessEnv {
		resolverOpts = append(resolverOpts, resolver.WithProcessEnv())
	}
	table := converter.NewTable(expr.NewEvaluator(), funcs)

	a := &App{
		cfg:      cfg,
		loader:   loader,
		resolver: resolver.NewResolver(table, log.GetChildLogger("resolver"), resolverOpts...),
		renderer: renderer,
		logger:   log,
		environ:  os.Environ(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Resolve loads the declarations and runs one pass from a fresh copy of the
// environment snapshot. A fatal condition is returned as a
// *resolver.FatalError and no namespace is returned.
func (a *App) Resolve(ctx context.Context) (*models.Namespace, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := a.loader.Load(a.cfg.Resolver.FilePath)
	if err != nil {
		return nil, err
	}

	environ := a.environ
	if mode := a.cfg.Resolver.Mode; mode != "" {
		// later entries win when the environ slice is parsed
		environ = append(environ[:len(environ):len(environ)], a.cfg.Resolver.ModeVar+"="+mode)
	}

	ns := models.NewNamespace(environ, a.cfg.Resolver.ModeVar)
	if err = a.resolver.Resolve(raw, ns); err != nil {
		return nil, err
	}

	logger.FromContext(ctx, a.logger).Debug().
		Str("path", a.cfg.Resolver.FilePath).
		Str("mode", ns.Mode()).
		Int("resolved", len(ns.ResolvedKeys())).
		Msg("declarations resolved")
	return ns, nil
}

// Print resolves and renders the namespace to w.
func (a *App) Print(ctx context.Context, w io.Writer) error {
	ns, err := a.Resolve(ctx)
	if err != nil {
		return err
	}
	return a.renderer.Render(w, ns)
}

// Check resolves without printing and logs a summary.
func (a *App) Check(ctx context.Context) error {
	ns, err := a.Resolve(ctx)
	if err != nil {
		return err
	}

	logger.FromContext(ctx, a.logger).Info().
		Str("path", a.cfg.Resolver.FilePath).
		Str("mode", ns.Mode()).
		Strs("variables", ns.ResolvedKeys()).
		Msg("declarations are valid")
	return nil
}

// Exec resolves and replaces the process with name, whose environment is the
// resolved environment mapping. It only returns on failure.
func (a *App) Exec(ctx context.Context, name string, args []string) error {
	if a.launcher == nil {
		return fmt.Errorf("no launcher configured")
	}

	ns, err := a.Resolve(ctx)
	if err != nil {
		return err
	}

	logger.FromContext(ctx, a.logger).Debug().Str("command", name).Strs("args", args).Msg("executing command")
	if err = a.launcher.Exec(name, args, ns.Environ()); err != nil {
		return fmt.Errorf("%w %q: %w", ErrLaunch, name, err)
	}
	return nil
}

// Watch prints the namespace, then prints it again after every change of the
// declarations file until ctx is done. Failed passes are logged and the
// watch continues. Every entry logged during a pass carries its number.
func (a *App) Watch(ctx context.Context, w io.Writer) error {
	if a.watcher == nil {
		return fmt.Errorf("no watcher configured")
	}

	base := logger.FromContext(ctx, a.logger)
	pass := 0
	run := func() {
		pass++
		passLog := &logger.Logger{Logger: base.With().Int("pass", pass).Logger()}
		if err := a.Print(passLog.WithContext(ctx), w); err != nil {
			if ctx.Err() != nil {
				return
			}
			passLog.Error().Err(err).Msg("resolution failed, waiting for the next change")
		}
	}

	run()
	return a.watcher.Watch(ctx, run)
}
