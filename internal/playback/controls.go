package playback

// Controls are the enablement predicates a UI uses to grey out buttons. The
// player does not enforce them; calling a disabled operation is a no-op or
// a clamp.
type Controls struct {
	CanPlay  bool
	CanStep  bool
	CanReset bool
}

func (v View) Controls() Controls {
	return Controls{
		CanPlay:  v.Len > 0 && !v.Finished,
		CanStep:  v.Len > 0 && v.Index < v.Len-1,
		CanReset: v.Index > 0 || v.Finished,
	}
}

// Toggle is the play/pause button: pause while playing, play otherwise.
func (p *Player) Toggle() {
	if p.View().Playing {
		p.Pause()
		return
	}
	p.Play()
}
