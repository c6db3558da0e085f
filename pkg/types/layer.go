package types

// Layer 渲染深度层（数值越小越先绘制）
type Layer int

const (
	LayerWater Layer = iota
	LayerGround
	LayerSoil
	LayerSoilWater
	LayerRainFloor
	LayerHouseBottom
	LayerGroundPlant
	LayerMain // 与玩家等可移动实体同层，层内按 Y 排序
	LayerHouseTop
	LayerFruit
	LayerRainDrops
)

// String 返回深度层名称
func (l Layer) String() string {
	switch l {
	case LayerWater:
		return "water"
	case LayerGround:
		return "ground"
	case LayerSoil:
		return "soil"
	case LayerSoilWater:
		return "soil water"
	case LayerRainFloor:
		return "rain floor"
	case LayerHouseBottom:
		return "house bottom"
	case LayerGroundPlant:
		return "ground plant"
	case LayerMain:
		return "main"
	case LayerHouseTop:
		return "house top"
	case LayerFruit:
		return "fruit"
	case LayerRainDrops:
		return "rain drops"
	default:
		return "unknown"
	}
}
