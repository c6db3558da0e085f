package game

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理农田中的音效（锄地、播种）和背景音乐
//   - 音量与开关从 SettingsManager 读取
//   - 通过资源ID播放，无需关心路径
//
// 播放是即发即弃的：资源缺失只记录警告并返回 false，不影响游戏逻辑。
type AudioManager struct {
	resourceManager *ResourceManager         // 资源管理器（用于加载音频）
	settingsManager *SettingsManager         // 设置管理器（用于读取音量设置，可为 nil）
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（资源ID -> 播放器）
	musicPlayers    map[string]*audio.Player // 背景音乐播放器缓存（资源ID -> 播放器）
	missing         map[string]bool          // 已确认缺失的资源ID，避免重复加载和刷屏
	currentMusic    *audio.Player            // 当前播放的背景音乐
	currentMusicID  string                   // 当前播放的背景音乐ID
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
		musicPlayers:    make(map[string]*audio.Player),
		missing:         make(map[string]bool),
	}
}

// PlaySound 播放音效（单次）
//
// 参数：
//   - soundID: 音效资源ID（如 "SOUND_HOE", "SOUND_PLANT"）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.loadPlayer(soundID, am.soundPlayers, false)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Warnf("[AudioManager] Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// PlayMusic 播放背景音乐（循环）
// 同一时间只能播放一首背景音乐，重复调用同一首不会重新开始
func (am *AudioManager) PlayMusic(musicID string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().MusicEnabled {
		return false
	}

	if am.currentMusicID == musicID && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return true
	}
	am.StopMusic()

	player := am.loadPlayer(musicID, am.musicPlayers, true)
	if player == nil {
		return false
	}

	volume := am.getMusicVolume()
	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		log.Warnf("[AudioManager] Failed to rewind music %s: %v", musicID, err)
	}
	player.Play()

	am.currentMusic = player
	am.currentMusicID = musicID
	log.Debugf("[AudioManager] Playing music: %s (volume: %.2f)", musicID, volume)
	return true
}

// StopMusic 停止当前背景音乐
func (am *AudioManager) StopMusic() {
	if am.currentMusic != nil {
		am.currentMusic.Pause()
		am.currentMusic = nil
		am.currentMusicID = ""
	}
}

// ToggleMusic 开关背景音乐并写回设置，返回新状态
// 打开时从头播放 musicID
func (am *AudioManager) ToggleMusic(musicID string) bool {
	enabled := true
	if am.settingsManager != nil {
		enabled = !am.settingsManager.GetSettings().MusicEnabled
		am.settingsManager.SetMusicEnabled(enabled)
	}
	if !enabled {
		am.StopMusic()
		return false
	}
	am.PlayMusic(musicID)
	return true
}

// MusicVolume 当前音乐音量
func (am *AudioManager) MusicVolume() float64 {
	return am.getMusicVolume()
}

// SetMusicVolume 设置音乐音量并立即应用到当前音乐
func (am *AudioManager) SetMusicVolume(volume float64) {
	volume = clampVolume(volume)
	if am.settingsManager != nil {
		am.settingsManager.SetMusicVolume(volume)
	}
	for _, player := range am.musicPlayers {
		player.SetVolume(volume)
	}
}

// SetSoundVolume 设置音效音量，影响后续播放的所有音效
func (am *AudioManager) SetSoundVolume(volume float64) {
	volume = clampVolume(volume)
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
	for _, player := range am.soundPlayers {
		player.SetVolume(volume)
	}
}

// PreloadSounds 预加载音效，避免首次播放时的延迟
func (am *AudioManager) PreloadSounds(soundIDs []string) {
	loaded := 0
	for _, soundID := range soundIDs {
		if am.loadPlayer(soundID, am.soundPlayers, false) != nil {
			loaded++
		}
	}
	log.Debugf("[AudioManager] Preloaded %d/%d sounds", loaded, len(soundIDs))
}

// loadPlayer 获取或加载播放器
func (am *AudioManager) loadPlayer(id string, cache map[string]*audio.Player, loop bool) *audio.Player {
	if player, exists := cache[id]; exists {
		return player
	}
	if am.missing[id] || am.resourceManager == nil {
		return nil
	}

	filePath, exists := am.resourceManager.ResourcePath(id)
	if !exists {
		am.missing[id] = true
		log.Warnf("[AudioManager] Audio resource not found: %s", id)
		return nil
	}

	var (
		player *audio.Player
		err    error
	)
	if loop {
		player, err = am.resourceManager.LoadAudio(filePath)
	} else {
		player, err = am.resourceManager.LoadSoundEffect(filePath)
	}
	if err != nil {
		am.missing[id] = true
		log.Warnf("[AudioManager] Failed to load %s: %v", id, err)
		return nil
	}

	cache[id] = player
	return player
}

// getMusicVolume 获取音乐音量设置
func (am *AudioManager) getMusicVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().MusicVolume
	}
	return DefaultSettings().MusicVolume
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return DefaultSettings().SoundVolume
}
