package app

import "context"

// Run executes one load -> assemble -> emit cycle, or keeps doing so on every
// configuration change when watching.
func (a *App) Run(ctx context.Context) error {
	a.logger.Debug("App.Run method started.", "config_path", a.config.ConfigPath, "emit", a.config.Emit)

	if a.config.Watch {
		return a.watch(ctx)
	}
	if err := a.once(ctx); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) once(ctx context.Context) error {
	d, err := a.Describe(ctx)
	if err != nil {
		return err
	}
	return a.emit(ctx, d)
}
