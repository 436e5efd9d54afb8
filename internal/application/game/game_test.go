package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/younwookim/motionkit/internal/application/scene"
	"github.com/younwookim/motionkit/internal/domain/entity"
)

// mockScene is a test double for Scene interface
type mockScene struct {
	name          string
	updateCalled  int
	drawCalled    int
	onEnterCalled int
	onExitCalled  int
	lastDT        float64
	nextScene     scene.Scene
	updateErr     error
}

func (m *mockScene) Name() string { return m.name }

func (m *mockScene) Update(dt float64) (scene.Scene, error) {
	m.updateCalled++
	m.lastDT = dt
	return m.nextScene, m.updateErr
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled++
}

func (m *mockScene) OnEnter() {
	m.onEnterCalled++
}

func (m *mockScene) OnExit() {
	m.onExitCalled++
}

func TestNew(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 320, 240, nil)

	assert.NotNil(t, g)
	assert.Equal(t, 1, mockInitial.onEnterCalled, "OnEnter should be called on initial scene")
}

func TestGame_Update_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 320, 240, nil)

	err := g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, mockInitial.updateCalled, "Update should delegate to current scene")
	assert.InDelta(t, 1.0/60.0, mockInitial.lastDT, 1e-12)
}

func TestGame_Draw_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 320, 240, nil)

	img := ebiten.NewImage(320, 240)
	g.Draw(img)

	assert.Equal(t, 1, mockInitial.drawCalled, "Draw should delegate to current scene")
}

func TestGame_Layout(t *testing.T) {
	g := New(&mockScene{}, 320, 240, nil)

	w, h := g.Layout(640, 480)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestGame_SceneTransition(t *testing.T) {
	scene1 := &mockScene{name: "first"}
	scene2 := &mockScene{name: "second"}
	scene1.nextScene = scene2

	core, logs := observer.New(zap.InfoLevel)
	g := New(scene1, 320, 240, zap.New(core))
	assert.Equal(t, 1, scene1.onEnterCalled, "Initial scene OnEnter called")

	err := g.Update()
	assert.NoError(t, err)

	assert.Equal(t, 1, scene1.updateCalled)
	assert.Equal(t, 1, scene1.onExitCalled, "scene1 OnExit called on transition")
	assert.Equal(t, 1, scene2.onEnterCalled, "scene2 OnEnter called on transition")

	changed := logs.FilterMessage("scene changed")
	if assert.Equal(t, 1, changed.Len()) {
		fields := changed.All()[0].ContextMap()
		assert.Equal(t, "first", fields["from"])
		assert.Equal(t, "second", fields["to"])
	}

	err = g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, scene2.updateCalled, "scene2 Update called")
}

func TestGame_NoTransitionWhenNil(t *testing.T) {
	scene1 := &mockScene{nextScene: nil}

	g := New(scene1, 320, 240, nil)

	for i := 0; i < 5; i++ {
		err := g.Update()
		assert.NoError(t, err)
	}

	assert.Equal(t, 5, scene1.updateCalled, "All updates go to scene1")
	assert.Equal(t, 0, scene1.onExitCalled, "No OnExit when no transition")
}

func TestGame_UpdateError(t *testing.T) {
	scene1 := &mockScene{updateErr: assert.AnError}

	g := New(scene1, 320, 240, nil)

	err := g.Update()
	assert.Error(t, err, "Error should propagate from scene")
}

func TestGame_SetDT(t *testing.T) {
	s := &mockScene{}
	g := New(s, 320, 240, nil)

	g.SetDT(0.02)
	g.SetDT(0) // ignored
	assert.Equal(t, 0.02, g.DT())

	assert.NoError(t, g.Update())
	assert.Equal(t, 0.02, s.lastDT)

	g.Close()
	assert.Equal(t, 1, s.onExitCalled)
}

func TestSample(t *testing.T) {
	tests := []struct {
		name                               string
		left, right, jumpPressed, jumpHeld bool
		want                               entity.InputSample
	}{
		{"idle", false, false, false, false, entity.InputSample{}},
		{"left", true, false, false, false, entity.InputSample{Axis: -1}},
		{"right", false, true, false, false, entity.InputSample{Axis: 1}},
		{"both cancel", true, true, false, false, entity.InputSample{}},
		{"press implies held", false, false, true, false, entity.InputSample{JumpPressed: true, JumpHeld: true}},
		{"held", false, true, false, true, entity.InputSample{Axis: 1, JumpHeld: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sample(tt.left, tt.right, tt.jumpPressed, tt.jumpHeld))
		})
	}
}

func TestAnyKey(t *testing.T) {
	pressed := func(k ebiten.Key) bool { return k == ebiten.KeySpace }

	assert.True(t, anyKey(DefaultBindings().Jump, pressed))
	assert.False(t, anyKey(DefaultBindings().Left, pressed))
	assert.False(t, anyKey(nil, pressed))
}
