package render

// State is the phase of the view animation. A view cycles
// FadeIn -> Normal -> FadeOut; computing the next drawing happens outside the
// animator, between FadeOut and the next FadeIn.
type State int

const (
	// StateFadeIn brightens the drawing from black while cycling colors.
	StateFadeIn State = iota
	// StateNormal cycles colors at full brightness.
	StateNormal
	// StateFadeOut darkens the drawing back to black.
	StateFadeOut
	// StateDone is reached after the fade-out completes.
	StateDone
)

// Animator advances the color-cycling offset and fade amount frame by frame.
// It never touches the index image or the color table; both stay immutable
// while the animator rotates a read offset through [0,256).
type Animator struct {
	state       State
	offset      int
	fade        float64
	fadeStep    float64
	normalLeft  int
	infiniteRun bool
}

// NewAnimator creates an animator that fades in over fadeFrames frames, cycles
// for normalFrames frames, and fades out over fadeFrames frames. fadeFrames 0
// skips the fades; normalFrames < 0 cycles forever.
func NewAnimator(fadeFrames, normalFrames int) *Animator {
	a := &Animator{
		state:       StateFadeIn,
		normalLeft:  normalFrames,
		infiniteRun: normalFrames < 0,
	}
	if fadeFrames > 0 {
		a.fadeStep = 1 / float64(fadeFrames)
	} else {
		a.state = StateNormal
		a.fade = 1
	}
	return a
}

// State returns the current animation phase.
func (a *Animator) State() State { return a.state }

// Offset returns the current color-table read offset in [0,256).
func (a *Animator) Offset() int { return a.offset }

// Fade returns the current brightness in [0,1].
func (a *Animator) Fade() float64 { return a.fade }

// Step advances one frame: the offset always rotates; the fade amount ramps
// during the fade states. It reports false once the animation is done.
func (a *Animator) Step() bool {
	if a.state == StateDone {
		return false
	}

	a.offset = (a.offset + 1) % 256

	switch a.state {
	case StateFadeIn:
		a.fade += a.fadeStep
		if a.fade >= 1 {
			a.fade = 1
			a.state = StateNormal
		}
	case StateNormal:
		if a.infiniteRun {
			break
		}
		a.normalLeft--
		if a.normalLeft <= 0 {
			if a.fadeStep > 0 {
				a.state = StateFadeOut
			} else {
				a.state = StateDone
			}
		}
	case StateFadeOut:
		a.fade -= a.fadeStep
		if a.fade <= 0 {
			a.fade = 0
			a.state = StateDone
		}
	}

	return a.state != StateDone
}
