package components

import "github.com/yohamta/donburi"

// FeedbackSink receives fire-and-forget audio/visual cues from the
// simulation. It is injected at scene setup; a nil sink means feedback
// is simply dropped.
type FeedbackSink interface {
	Play(event string, intensity float64)
}

// FeedbackData holds the injected sink (singleton component).
type FeedbackData struct {
	Sink FeedbackSink
}

var Feedback = donburi.NewComponentType[FeedbackData]()
