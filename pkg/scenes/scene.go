package scenes

import (
	"github.com/decker502/farmland/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// 编译期检查：农田场景支持退出存档
var _ game.Saveable = (*FarmScene)(nil)
