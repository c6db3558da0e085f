package systems

import "github.com/charmbracelet/log"

// DayCycleSystem 日夜循环
//
// 新的一天开始时：
//  1. 清除全部湿润土块
//  2. 重新决定天气
//  3. 下雨时浇灌全部已耕格子
type DayCycleSystem struct {
	soil    *SoilSystem
	weather *WeatherSystem
	day     int
}

// NewDayCycleSystem 创建日夜循环系统，从第 1 天开始
func NewDayCycleSystem(soil *SoilSystem, weather *WeatherSystem) *DayCycleSystem {
	return &DayCycleSystem{soil: soil, weather: weather, day: 1}
}

// Day 当前天数（从 1 开始）
func (d *DayCycleSystem) Day() int {
	return d.day
}

// Weather 返回天气系统
func (d *DayCycleSystem) Weather() *WeatherSystem {
	return d.weather
}

// StartNewDay 进入新的一天
func (d *DayCycleSystem) StartNewDay() {
	d.soil.RemoveWater()
	if d.weather.Roll() {
		d.soil.WaterAll()
	}
	d.day++
	log.Infof("[DayCycleSystem] Day %d begins (raining=%v)", d.day, d.weather.IsRaining())
}

// setDay 读档时恢复天数
func (d *DayCycleSystem) setDay(day int) {
	if day < 1 {
		day = 1
	}
	d.day = day
}
