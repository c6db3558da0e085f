// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "strings"

// CropType 定义作物的类型
type CropType int

const (
	// CropUnknown 未知作物类型
	CropUnknown CropType = iota
	// CropCorn 玉米
	CropCorn
	// CropTomato 番茄
	CropTomato
)

// AllCropTypes 所有可种植的作物类型（按定义顺序）
var AllCropTypes = []CropType{CropCorn, CropTomato}

// String 返回作物类型的字符串表示
// 与资源目录名、配置键一致（如 "corn"）
func (c CropType) String() string {
	switch c {
	case CropCorn:
		return "corn"
	case CropTomato:
		return "tomato"
	default:
		return "unknown"
	}
}

// ParseCropType 将配置/存档中的字符串解析为作物类型
// 大小写不敏感；无法识别时返回 CropUnknown, false
func ParseCropType(name string) (CropType, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "corn":
		return CropCorn, true
	case "tomato":
		return CropTomato, true
	default:
		return CropUnknown, false
	}
}
