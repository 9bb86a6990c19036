package stream

// delayed shifts a track so its frame 0 lands on offset. Sequences use it
// to start after a delay without stretching their slots.
type delayed struct {
	offset int
	track  Track
}

func newDelayed(offset int, t Track) Track {
	if offset == 0 {
		return t
	}
	return &delayed{offset: offset, track: t}
}

func (d *delayed) Name() string {
	return d.track.Name()
}

func (d *delayed) Sample(frame int) Sample {
	return d.track.Sample(frame - d.offset)
}
