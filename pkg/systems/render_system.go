package systems

import (
	"image/color"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/decker502/farmland/pkg/components"
	"github.com/decker502/farmland/pkg/ecs"
	"github.com/decker502/farmland/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageSource 按资源ID取图（由 game.ResourceManager 实现）
type ImageSource interface {
	GetImageByID(resourceID string) *ebiten.Image
}

// RenderSystem 农田实体渲染
//
// 绘制所有拥有 Position + Depth + Visual 组件的实体：
//   - 先按深度层从小到大（soil → soil water → ground plant → main）
//   - 同层按视觉中心 Y 从小到大（靠下的作物遮挡靠上的）
//   - 仍相同时按实体ID，保证帧间稳定
//
// 图片缺失时用按层着色的色块代替，并只记录一次警告。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	images        ImageSource

	// ShowHitboxes 调试：绘制碰撞体边框
	ShowHitboxes bool

	missingWarned map[string]bool
}

// NewRenderSystem 创建渲染系统
// images 可为 nil（全部使用色块）
func NewRenderSystem(em *ecs.EntityManager, images ImageSource) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		images:        images,
		missingWarned: make(map[string]bool),
	}
}

// DrawOrder 返回本帧的绘制顺序（从底到顶）
func DrawOrder(em *ecs.EntityManager) []ecs.EntityID {
	ids := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.DepthComponent,
		*components.VisualComponent,
	](em)

	type drawKey struct {
		layer   types.Layer
		centerY float64
	}
	keys := make(map[ecs.EntityID]drawKey, len(ids))
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		depth, _ := ecs.GetComponent[*components.DepthComponent](em, id)
		visual, _ := ecs.GetComponent[*components.VisualComponent](em, id)
		keys[id] = drawKey{layer: depth.Layer, centerY: pos.Y + visual.Height/2}
	}

	sort.SliceStable(ids, func(i, j int) bool {
		a, b := keys[ids[i]], keys[ids[j]]
		if a.layer != b.layer {
			return a.layer < b.layer
		}
		if a.centerY != b.centerY {
			return a.centerY < b.centerY
		}
		return ids[i] < ids[j]
	})
	return ids
}

// Draw 绘制全部农田实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range DrawOrder(s.entityManager) {
		s.drawEntity(screen, id)
	}

	if s.ShowHitboxes {
		for _, box := range BlockingHitboxes(s.entityManager) {
			vector.StrokeRect(screen, float32(box.X), float32(box.Y), float32(box.Width), float32(box.Height),
				1, color.RGBA{R: 255, A: 255}, false)
		}
	}
}

func (s *RenderSystem) drawEntity(screen *ebiten.Image, id ecs.EntityID) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	depth, _ := ecs.GetComponent[*components.DepthComponent](s.entityManager, id)
	visual, _ := ecs.GetComponent[*components.VisualComponent](s.entityManager, id)

	var img *ebiten.Image
	if s.images != nil && visual.ImageID != "" {
		img = s.images.GetImageByID(visual.ImageID)
	}

	if img == nil {
		if !s.missingWarned[visual.ImageID] {
			s.missingWarned[visual.ImageID] = true
			log.Warnf("[RenderSystem] Image %q not loaded, drawing placeholder", visual.ImageID)
		}
		vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y), float32(visual.Width), float32(visual.Height),
			layerPlaceholderColor(depth.Layer), false)
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	screen.DrawImage(img, op)
}

// layerPlaceholderColor 占位色块颜色
func layerPlaceholderColor(layer types.Layer) color.Color {
	switch layer {
	case types.LayerSoil:
		return color.RGBA{R: 120, G: 80, B: 45, A: 255}
	case types.LayerSoilWater:
		return color.RGBA{R: 60, G: 50, B: 40, A: 160}
	case types.LayerGroundPlant:
		return color.RGBA{R: 150, G: 200, B: 90, A: 255}
	case types.LayerMain:
		return color.RGBA{R: 70, G: 160, B: 50, A: 255}
	default:
		return color.RGBA{R: 255, G: 0, B: 255, A: 255}
	}
}
