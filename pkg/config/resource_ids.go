package config

import (
	"fmt"
	"strings"

	"github.com/decker502/farmland/pkg/types"
)

// 音频资源ID（assets/config/resources.yaml）
const (
	SoundHoe   = "SOUND_HOE"
	SoundPlant = "SOUND_PLANT"
	SoundMusic = "SOUND_MUSIC"
)

// SoilImageID 返回土块形状对应的图片资源ID，如 "lr" -> "IMAGE_SOIL_LR"
func SoilImageID(variant types.SoilVariant) string {
	return "IMAGE_SOIL_" + strings.ToUpper(string(variant))
}

// WaterImageID 返回湿润土块外观对应的图片资源ID，如 2 -> "IMAGE_SOIL_WATER_2"
func WaterImageID(index int) string {
	return fmt.Sprintf("IMAGE_SOIL_WATER_%d", index)
}

// CropImageID 返回作物生长阶段对应的图片资源ID，如 (corn, 1) -> "IMAGE_CORN_1"
func CropImageID(crop types.CropType, stage int) string {
	return fmt.Sprintf("IMAGE_%s_%d", strings.ToUpper(crop.String()), stage)
}
