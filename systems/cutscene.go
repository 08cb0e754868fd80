package systems

import (
	"github.com/automoto/breachpoint/components"
	cfg "github.com/automoto/breachpoint/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCutscene plays the scripted step sequence, driving the camera
// and captions until the script runs out.
func UpdateCutscene(ecs *ecs.ECS) {
	entry, ok := components.Cutscene.First(ecs.World)
	if !ok {
		return
	}
	cutscene := components.Cutscene.Get(entry)
	if !cutscene.Active {
		return
	}

	var camera *components.CameraData
	if cameraEntry, ok := components.Camera.First(ecs.World); ok {
		camera = components.Camera.Get(cameraEntry)
		camera.Scripted = true
	}

	if cutscene.Index >= len(cutscene.Steps) {
		finishCutscene(ecs, cutscene, camera)
		return
	}

	if !cutscene.Started {
		beginStep(ecs, cutscene, camera)
		cutscene.Started = true
	}

	dt := float32(cfg.Time.Delta)
	step := cutscene.Steps[cutscene.Index]

	if cutscene.Fade != nil {
		alpha, done := cutscene.Fade.Update(dt)
		cutscene.CaptionAlpha = alpha
		if done {
			cutscene.Fade = nil
		}
	}

	switch step.Kind {
	case components.StepWait, components.StepCaption:
		cutscene.StepTimer -= cfg.Time.Delta
		if cutscene.StepTimer <= 0 {
			advanceStep(ecs, cutscene, camera)
		}

	case components.StepCameraPan:
		done := camera == nil
		if camera != nil && cutscene.PanX != nil && cutscene.PanY != nil {
			x, doneX := cutscene.PanX.Update(dt)
			y, doneY := cutscene.PanY.Update(dt)
			camera.Position.X = float64(x)
			camera.Position.Y = float64(y)
			done = doneX && doneY
		}
		if done {
			cutscene.PanX = nil
			cutscene.PanY = nil
			advanceStep(ecs, cutscene, camera)
		}

	case components.StepFeedback:
		advanceStep(ecs, cutscene, camera)
	}
}

func beginStep(ecs *ecs.ECS, cutscene *components.CutsceneData, camera *components.CameraData) {
	step := cutscene.Steps[cutscene.Index]

	switch step.Kind {
	case components.StepWait:
		cutscene.StepTimer = step.Duration

	case components.StepCaption:
		cutscene.Caption = step.Text
		cutscene.CaptionAlpha = 0
		cutscene.Fade = gween.New(0, 1, 0.4, ease.OutQuad)
		cutscene.StepTimer = step.Duration

	case components.StepCameraPan:
		if camera != nil {
			duration := float32(step.Duration)
			targetX := float32(step.Target.X - float64(cfg.C.Width)/2)
			targetY := float32(step.Target.Y - float64(cfg.C.Height)/2)
			cutscene.PanX = gween.New(float32(camera.Position.X), targetX, duration, ease.InOutQuad)
			cutscene.PanY = gween.New(float32(camera.Position.Y), targetY, duration, ease.InOutQuad)
		}

	case components.StepFeedback:
		PlayFeedback(ecs, step.Cue, step.Intensity)
	}
}

func advanceStep(ecs *ecs.ECS, cutscene *components.CutsceneData, camera *components.CameraData) {
	cutscene.Index++
	cutscene.Started = false
	if cutscene.Index >= len(cutscene.Steps) {
		finishCutscene(ecs, cutscene, camera)
	}
}

func finishCutscene(ecs *ecs.ECS, cutscene *components.CutsceneData, camera *components.CameraData) {
	cutscene.Active = false
	cutscene.Caption = ""
	cutscene.CaptionAlpha = 0
	if camera != nil {
		camera.Scripted = false
	}
	EmitEvent(ecs, components.Event{Kind: components.EventCutsceneFinished})
}
