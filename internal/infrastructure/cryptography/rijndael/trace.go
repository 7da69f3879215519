package rijndael

// Step names a point in the block codec at which a Tracer is called.
type Step int

const (
	StepInput Step = iota
	StepStart
	StepSubBytes
	StepShiftRows
	StepMixColumns
	StepAddRoundKey
	StepInvSubBytes
	StepInvShiftRows
	StepInvMixColumns
	StepInvAddRoundKey
	StepOutput
)

// Names follow the round-by-round tables of FIPS-197 Appendix C.
var stepNames = [...]string{
	StepInput:          "input",
	StepStart:          "start",
	StepSubBytes:       "s_box",
	StepShiftRows:      "s_row",
	StepMixColumns:     "m_col",
	StepAddRoundKey:    "k_add",
	StepInvSubBytes:    "is_box",
	StepInvShiftRows:   "is_row",
	StepInvMixColumns:  "im_col",
	StepInvAddRoundKey: "ik_add",
	StepOutput:         "output",
}

func (s Step) String() string {
	if s < 0 || int(s) >= len(stepNames) {
		return "unknown"
	}
	return stepNames[s]
}

// Tracer observes the state after each step of a block operation.
// It must not modify or retain state.
type Tracer func(round int, step Step, state *[BlockSize]byte)
