package game

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// createTestGdataManager 创建用于测试的 gdata Manager
// 使用唯一的应用名，测试结束后删除存储目录
func createTestGdataManager(t *testing.T, testName string) *gdata.Manager {
	t.Helper()

	appName := fmt.Sprintf("farmland_test_%s_%d", testName, time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}

	t.Cleanup(func() {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			os.RemoveAll(filepath.Join(homeDir, ".local", "share", appName))
		}
	})
	return manager
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.MusicVolume != 0.7 {
		t.Errorf("MusicVolume: got %v, want 0.7", settings.MusicVolume)
	}
	if settings.SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", settings.SoundVolume)
	}
	if !settings.MusicEnabled || !settings.SoundEnabled {
		t.Error("audio should be enabled by default")
	}
	if settings.Fullscreen || settings.ShowGrid || settings.ShowHitboxes {
		t.Error("display toggles should be off by default")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) returned error: %v", err)
	}

	sm.SetMusicVolume(0.3)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode should not fail: %v", err)
	}
	if sm.GetSettings().MusicVolume != 0.7 {
		t.Error("Load() in degraded mode should reset to defaults")
	}
}

// TestSettingsLoadSave 测试设置持久化
func TestSettingsLoadSave(t *testing.T) {
	manager := createTestGdataManager(t, "settings")

	sm1, _ := NewSettingsManager(manager)
	sm1.SetMusicVolume(0.25)
	sm1.SetSoundEnabled(false)
	sm1.SetFullscreen(true)
	sm1.ToggleShowGrid()
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	sm2, _ := NewSettingsManager(manager)
	settings := sm2.GetSettings()
	if settings.MusicVolume != 0.25 {
		t.Errorf("Loaded MusicVolume: got %v, want 0.25", settings.MusicVolume)
	}
	if settings.SoundEnabled {
		t.Error("Loaded SoundEnabled: got true, want false")
	}
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
	if !settings.ShowGrid {
		t.Error("Loaded ShowGrid: got false, want true")
	}
}

// TestSettingsToggles 测试显示开关
func TestSettingsToggles(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	if !sm.ToggleShowHitboxes() {
		t.Error("first toggle should enable hitboxes")
	}
	if sm.ToggleShowHitboxes() {
		t.Error("second toggle should disable hitboxes")
	}
	if !sm.ToggleShowGrid() || !sm.GetSettings().ShowGrid {
		t.Error("ToggleShowGrid should enable the grid")
	}
}

// TestClampVolume 测试音量截断
func TestClampVolume(t *testing.T) {
	tests := []struct {
		input, want float64
	}{
		{-0.5, 0.0},
		{0.0, 0.0},
		{0.5, 0.5},
		{1.0, 1.0},
		{1.5, 1.0},
	}
	for _, tt := range tests {
		if got := clampVolume(tt.input); got != tt.want {
			t.Errorf("clampVolume(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
