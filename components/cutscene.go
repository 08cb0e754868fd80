package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CutsceneStepKind identifies one kind of scripted cutscene step.
type CutsceneStepKind int

const (
	StepWait CutsceneStepKind = iota
	StepCaption
	StepCameraPan
	StepFeedback
)

// CutsceneStep is a single timed step in a scripted sequence.
type CutsceneStep struct {
	Kind      CutsceneStepKind
	Duration  float64
	Text      string // caption text
	Target    Vector // camera pan destination
	Cue       string // feedback cue name
	Intensity float64
}

// CutsceneData plays an ordered list of steps. While Active, player
// input is suppressed and the camera may be scripted.
type CutsceneData struct {
	Steps     []CutsceneStep
	Index     int
	Active    bool
	StepTimer float64
	Started   bool

	// Caption currently shown, with a fade driven by a tween.
	Caption      string
	CaptionAlpha float32

	// Camera pan tweens for the current step.
	PanX *gween.Tween
	PanY *gween.Tween
	Fade *gween.Tween
}

var Cutscene = donburi.NewComponentType[CutsceneData]()
