package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene records the calls the manager forwards to it.
type MockScene struct {
	updates   int
	draws     int
	deltaTime float64
}

func (m *MockScene) Update(deltaTime float64) {
	m.updates++
	m.deltaTime = deltaTime
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.draws++
}

// saveableScene counts SaveOnExit calls.
type saveableScene struct {
	MockScene
	saves  int
	result bool
}

func (s *saveableScene) SaveOnExit() bool {
	s.saves++
	return s.result
}

func TestSceneManagerEmpty(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Fatal("new manager should have no scene")
	}

	// 没有场景时 Update/Draw 不应 panic
	sm.Update(1.0 / 60)
	sm.Draw(ebiten.NewImage(64, 64))
}

func TestSceneManagerForwardsToCurrentScene(t *testing.T) {
	sm := NewSceneManager()
	first, second := &MockScene{}, &MockScene{}

	sm.SwitchTo(first)
	sm.Update(0.5)
	sm.Draw(ebiten.NewImage(64, 64))

	if first.updates != 1 || first.draws != 1 {
		t.Errorf("first scene: updates=%d draws=%d, want 1/1", first.updates, first.draws)
	}
	if first.deltaTime != 0.5 {
		t.Errorf("deltaTime: got %v, want 0.5", first.deltaTime)
	}

	sm.SwitchTo(second)
	sm.Update(0.25)

	if sm.GetCurrentScene() != second {
		t.Error("SwitchTo did not replace the current scene")
	}
	if first.updates != 1 || second.updates != 1 {
		t.Errorf("updates after switch: first=%d second=%d, want 1/1", first.updates, second.updates)
	}
}

func TestSceneManagerSavesOutgoingScene(t *testing.T) {
	sm := NewSceneManager()
	farm := &saveableScene{result: true}
	sm.SwitchTo(farm)
	sm.SwitchTo(farm)
	if farm.saves != 0 {
		t.Errorf("re-selecting the same scene should not save, got %d saves", farm.saves)
	}

	sm.SwitchTo(&MockScene{})
	if farm.saves != 1 {
		t.Errorf("Expected 1 save when switching away, got %d", farm.saves)
	}
}

func TestSceneManagerSaveCurrentScene(t *testing.T) {
	sm := NewSceneManager()
	if !sm.SaveCurrentScene() {
		t.Error("SaveCurrentScene with no scene should succeed")
	}

	sm.SwitchTo(&MockScene{})
	if !sm.SaveCurrentScene() {
		t.Error("SaveCurrentScene with a non-saveable scene should succeed")
	}

	failing := &saveableScene{result: false}
	sm.SwitchTo(failing)
	if sm.SaveCurrentScene() {
		t.Error("SaveCurrentScene should report the scene's failure")
	}
	if failing.saves != 1 {
		t.Errorf("Expected 1 save, got %d", failing.saves)
	}
}
