package bootstrap

import (
	"github.com/eleven-am/streetscene/internal/scene"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func ProvideSceneStore(db *gorm.DB) *scene.Store {
	return scene.NewStore(db)
}

func RunMigrations(sceneStore *scene.Store) error {
	return sceneStore.Migrate()
}

var StoresModule = fx.Options(
	fx.Provide(ProvideSceneStore),
	fx.Invoke(RunMigrations),
)
