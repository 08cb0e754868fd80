package components

import "github.com/yohamta/donburi"

type CameraData struct {
	Position Vector

	// Scripted overrides the follow behavior while a cutscene pans the
	// camera.
	Scripted bool
}

var Camera = donburi.NewComponentType[CameraData]()
