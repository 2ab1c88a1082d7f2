package render

// Call is one recorded context operation. Args holds the numeric
// arguments in call order; Color is set for SetFill.
type Call struct {
	Op    string
	Args  []float64
	Color string
}

// Recorder implements Context, recording calls instead of drawing.
// Tests assert against the call log and the save/restore balance.
type Recorder struct {
	W, H  float64
	calls []Call
	depth int
}

// NewRecorder returns a recorder reporting the given surface size
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Save() {
	r.depth++
	r.calls = append(r.calls, Call{Op: "Save"})
}

func (r *Recorder) Restore() {
	if r.depth > 0 {
		r.depth--
	}
	r.calls = append(r.calls, Call{Op: "Restore"})
}

func (r *Recorder) Translate(x, y float64) {
	r.calls = append(r.calls, Call{Op: "Translate", Args: []float64{x, y}})
}

func (r *Recorder) Rotate(rad float64) {
	r.calls = append(r.calls, Call{Op: "Rotate", Args: []float64{rad}})
}

func (r *Recorder) SetFill(color string) {
	r.calls = append(r.calls, Call{Op: "SetFill", Color: color})
}

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.calls = append(r.calls, Call{Op: "FillRect", Args: []float64{x, y, w, h}})
}

func (r *Recorder) Size() (float64, float64) {
	return r.W, r.H
}

// Calls returns the full call log in order
func (r *Recorder) Calls() []Call {
	return r.calls
}

// CallsNamed returns the logged calls with the given op, in order
func (r *Recorder) CallsNamed(op string) []Call {
	var out []Call
	for _, c := range r.calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Depth reports the current save/restore nesting, 0 when balanced
func (r *Recorder) Depth() int {
	return r.depth
}

// Reset clears the log and balance
func (r *Recorder) Reset() {
	r.calls = nil
	r.depth = 0
}
