package labels

// State is the label machine state: Idle or PendingFirst.
type State interface {
	isState()
}

// Idle waits for the first character of a label.
type Idle struct{}

// PendingFirst holds the first character of a partially typed label.
type PendingFirst struct {
	Char rune
}

func (Idle) isState()         {}
func (PendingFirst) isState() {}

// Command is a side effect addressed through a reserved key pair.
type Command int

const (
	CommandNone Command = iota
	CommandToggleHidden
)

// Event is the outcome of feeding one keystroke to the machine.
type Event interface {
	isEvent()
}

// Ignored means the keystroke addressed nothing and the state is unchanged.
type Ignored struct{}

// Pending means the keystroke started a label.
type Pending struct {
	Char rune
}

// Descend selects the candidate at Index.
type Descend struct {
	Index int
}

// Invoke requests a reserved command.
type Invoke struct {
	Command Command
}

// Abandoned means the second keystroke completed no label; the pending
// character was discarded.
type Abandoned struct {
	First  rune
	Second rune
}

func (Ignored) isEvent()   {}
func (Pending) isEvent()   {}
func (Descend) isEvent()   {}
func (Invoke) isEvent()    {}
func (Abandoned) isEvent() {}

// Machine interprets keystrokes against a label set.
type Machine struct {
	set      []Label
	state    State
	reserved map[rune]Command
}

// NewMachine builds a machine with labels for count candidates.
func NewMachine(count int) *Machine {
	return &Machine{
		set:      Generate(count),
		state:    Idle{},
		reserved: make(map[rune]Command),
	}
}

// Reserve binds the doubled symbol (e.g. "hh") to cmd. The binding only fires
// when no label occupies that pair.
func (m *Machine) Reserve(symbol rune, cmd Command) {
	m.reserved[normalize(symbol)] = cmd
}

// Labels returns the current label set, index-aligned with the candidates.
func (m *Machine) Labels() []Label {
	return m.set
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Pending returns the pending first character, if any.
func (m *Machine) Pending() (rune, bool) {
	if p, ok := m.state.(PendingFirst); ok {
		return p.Char, true
	}
	return 0, false
}

// Rebuild replaces the label set for a new candidate list and returns to Idle.
func (m *Machine) Rebuild(count int) {
	m.set = Generate(count)
	m.state = Idle{}
}

// Reset discards any pending first character.
func (m *Machine) Reset() {
	m.state = Idle{}
}

// Feed applies one keystroke.
func (m *Machine) Feed(c rune) Event {
	c = normalize(c)

	switch st := m.state.(type) {
	case PendingFirst:
		m.state = Idle{}
		if idx := Find(m.set, st.Char, c); idx >= 0 {
			return Descend{Index: idx}
		}
		if cmd, ok := m.reserved[c]; ok && st.Char == c {
			return Invoke{Command: cmd}
		}
		return Abandoned{First: st.Char, Second: c}
	default:
		if !HasFirst(m.set, c) {
			return Ignored{}
		}
		m.state = PendingFirst{Char: c}
		return Pending{Char: c}
	}
}
