package container

import (
	app "table-finder/internal/application"
	"table-finder/internal/domain/outline"
	"table-finder/internal/domain/port"
)

type Container struct {
	UserService *app.UserService
	ScanService *app.ScanService
}

func New(userRepo port.UserRepository, scanRepo port.ScanRepository, extractor port.SegmentExtractor, renderer port.OutlineRenderer, finder *outline.Finder) *Container {
	userService := app.NewUserService(userRepo)
	scanService := app.NewScanService(userService, extractor, renderer, scanRepo, finder)

	return &Container{
		UserService: userService,
		ScanService: scanService,
	}
}

// Batch возвращает пакетный обработчик поверх того же сервиса проверок.
func (c *Container) Batch(workers int) *app.BatchScanner {
	return app.NewBatchScanner(c.ScanService, workers)
}
