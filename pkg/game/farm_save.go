package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/decker502/farmland/pkg/systems"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ErrNoFarmSave 没有农田存档
var ErrNoFarmSave = errors.New("no farm save")

// farmSaveVersion 存档格式版本
const farmSaveVersion = 1

// 存储路径常量
const (
	farmSaveObject   = "farm"
	farmSaveProperty = "slot1"
)

// FarmSaveData 农田存档
type FarmSaveData struct {
	Version   int                  `yaml:"version"`
	SavedAt   time.Time            `yaml:"savedAt"`
	Farm      systems.FarmSnapshot `yaml:"farm"`
	Inventory map[string]int       `yaml:"inventory"`
}

// FarmSaveManager 农田存档管理器
// 通过 gdata 持久化为 YAML；gdataManager 为 nil 时为降级模式（不保存、没有存档）
type FarmSaveManager struct {
	gdataManager *gdata.Manager
}

// NewFarmSaveManager 创建农田存档管理器
func NewFarmSaveManager(gdataManager *gdata.Manager) *FarmSaveManager {
	return &FarmSaveManager{gdataManager: gdataManager}
}

// HasSave 是否存在农田存档
func (m *FarmSaveManager) HasSave() bool {
	return m.gdataManager != nil && m.gdataManager.ObjectPropExists(farmSaveObject, farmSaveProperty)
}

// Save 保存农田
//
// 返回：
//   - error: 序列化或写入失败；降级模式下返回 nil
func (m *FarmSaveManager) Save(data *FarmSaveData) error {
	if m.gdataManager == nil {
		return nil
	}

	data.Version = farmSaveVersion
	if data.SavedAt.IsZero() {
		data.SavedAt = time.Now()
	}

	payload, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal farm save: %w", err)
	}
	if err := m.gdataManager.SaveObjectProp(farmSaveObject, farmSaveProperty, payload); err != nil {
		return fmt.Errorf("failed to save farm: %w", err)
	}

	log.Infof("[FarmSaveManager] Saved day %d (%d tilled cells, %d crops)",
		data.Farm.Day, len(data.Farm.Tilled), len(data.Farm.Crops))
	return nil
}

// Load 读取农田存档
//
// 返回：
//   - *FarmSaveData: 存档数据
//   - error: ErrNoFarmSave（没有存档），或读取/反序列化/版本错误
func (m *FarmSaveManager) Load() (*FarmSaveData, error) {
	if !m.HasSave() {
		return nil, ErrNoFarmSave
	}

	payload, err := m.gdataManager.LoadObjectProp(farmSaveObject, farmSaveProperty)
	if err != nil {
		return nil, fmt.Errorf("failed to load farm save: %w", err)
	}

	var data FarmSaveData
	if err := yaml.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal farm save: %w", err)
	}
	if data.Version != farmSaveVersion {
		return nil, fmt.Errorf("unsupported farm save version %d (want %d)", data.Version, farmSaveVersion)
	}
	return &data, nil
}
