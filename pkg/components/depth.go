package components

import "github.com/decker502/farmland/pkg/types"

// DepthComponent 渲染深度标签
// 渲染协作方按 Layer 从小到大绘制
type DepthComponent struct {
	Layer types.Layer
}
