package factory

import (
	"github.com/automoto/breachpoint/archetypes"
	"github.com/automoto/breachpoint/components"
	cfg "github.com/automoto/breachpoint/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Singleton world entities: camera, event queue, feedback sink holder
// and audio state.

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{})
	return camera
}

func CreateEventQueue(ecs *ecs.ECS) *donburi.Entry {
	queue := archetypes.EventQueue.Spawn(ecs)
	components.EventQueue.SetValue(queue, components.EventQueueData{})
	return queue
}

func CreateFeedback(ecs *ecs.ECS, sink components.FeedbackSink) *donburi.Entry {
	feedback := archetypes.Feedback.Spawn(ecs)
	components.Feedback.SetValue(feedback, components.FeedbackData{Sink: sink})
	return feedback
}

func CreateAudio(ecs *ecs.ECS) *donburi.Entry {
	audio := archetypes.Audio.Spawn(ecs)
	components.Audio.SetValue(audio, components.AudioData{
		MusicVolume: cfg.Audio.DefaultMusicVol,
		SFXVolume:   cfg.Audio.DefaultSFXVol,
	})
	return audio
}

func CreateCutscene(ecs *ecs.ECS, steps []components.CutsceneStep) *donburi.Entry {
	cutscene := archetypes.Cutscene.Spawn(ecs)
	components.Cutscene.SetValue(cutscene, components.CutsceneData{
		Steps:  steps,
		Active: len(steps) > 0,
	})
	return cutscene
}
