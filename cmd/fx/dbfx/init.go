package dbfx

import (
	"go.uber.org/fx"

	"lankatrip/internal/infra"
)

var Module = fx.Options(
	fx.Provide(infra.InitPostgresql),
	fx.Invoke(infra.AutoMigrate),
)
