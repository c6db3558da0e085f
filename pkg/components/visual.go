package components

// VisualComponent 实体当前的视觉表现
//
// 核心逻辑只按资源ID选择图片，不持有图片本身；
// 渲染系统通过 ResourceManager.GetImageByID(ImageID) 取图。
type VisualComponent struct {
	ImageID string  // 资源ID，如 "IMAGE_SOIL_LR"、"IMAGE_CORN_2"
	Width   float64 // 当前图片宽度（像素）
	Height  float64 // 当前图片高度（像素）
}
