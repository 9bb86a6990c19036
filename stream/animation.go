package stream

// A Track derives one named output of a scene from the frame index. Sample
// must be a pure function of frame.
type Track interface {
	Name() string
	Sample(frame int) Sample
}
