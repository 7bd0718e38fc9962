package strategy

import "fmt"

// CutoffMode selects how far from the source a target may be.
type CutoffMode int

const (
	// CutoffNone accepts targets at any distance
	CutoffNone CutoffMode = iota
	// CutoffFixed accepts targets within a fixed distance
	CutoffFixed
	// CutoffDynamic accepts targets within a fraction of the farthest candidate's distance
	CutoffDynamic
)

var cutoffNames = map[CutoffMode]string{
	CutoffNone:    "none",
	CutoffFixed:   "fixed",
	CutoffDynamic: "dynamic",
}

func (m CutoffMode) String() string { return enumString(cutoffNames, m) }

func (m CutoffMode) MarshalText() ([]byte, error) { return enumMarshal(cutoffNames, m) }

func (m *CutoffMode) UnmarshalText(text []byte) error {
	return enumUnmarshal(cutoffNames, m, "cutoff mode", text)
}

// Targeting selects which of the surviving targets to attack.
type Targeting int

const (
	// TargetWeakest picks the target with the fewest ships
	TargetWeakest Targeting = iota
	// TargetClosest picks the target nearest to the source
	TargetClosest
)

var targetingNames = map[Targeting]string{
	TargetWeakest: "weakest",
	TargetClosest: "closest",
}

func (t Targeting) String() string { return enumString(targetingNames, t) }

func (t Targeting) MarshalText() ([]byte, error) { return enumMarshal(targetingNames, t) }

func (t *Targeting) UnmarshalText(text []byte) error {
	return enumUnmarshal(targetingNames, t, "targeting", text)
}

// Feasibility selects when the safety margin is checked and what happens when a target fails it.
type Feasibility int

const (
	// CheckNone never checks the safety margin
	CheckNone Feasibility = iota
	// CheckChosen checks only the selected target and gives up if it fails
	CheckChosen
	// CheckSkip passes over failing targets and keeps scanning
	CheckSkip
	// CheckStop stops scanning at the first failing target and keeps the best found so far
	CheckStop
)

var feasibilityNames = map[Feasibility]string{
	CheckNone:   "none",
	CheckChosen: "chosen",
	CheckSkip:   "skip",
	CheckStop:   "stop",
}

func (f Feasibility) String() string { return enumString(feasibilityNames, f) }

func (f Feasibility) MarshalText() ([]byte, error) { return enumMarshal(feasibilityNames, f) }

func (f *Feasibility) UnmarshalText(text []byte) error {
	return enumUnmarshal(feasibilityNames, f, "feasibility", text)
}

// CommitMode selects how many ships are sent once a target is chosen.
type CommitMode int

const (
	// CommitFraction sends a fixed fraction of the source's ships
	CommitFraction CommitMode = iota
	// CommitNeeded sends just enough ships to beat the estimated defense, holding back a reserve
	CommitNeeded
)

var commitNames = map[CommitMode]string{
	CommitFraction: "fraction",
	CommitNeeded:   "needed",
}

func (c CommitMode) String() string { return enumString(commitNames, c) }

func (c CommitMode) MarshalText() ([]byte, error) { return enumMarshal(commitNames, c) }

func (c *CommitMode) UnmarshalText(text []byte) error {
	return enumUnmarshal(commitNames, c, "commit mode", text)
}

func enumString[E ~int](names map[E]string, e E) string {
	if name, ok := names[e]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(e))
}

func enumMarshal[E ~int](names map[E]string, e E) ([]byte, error) {
	name, ok := names[e]
	if !ok {
		return nil, fmt.Errorf("unknown value %d", int(e))
	}
	return []byte(name), nil
}

func enumUnmarshal[E ~int](names map[E]string, e *E, kind string, text []byte) error {
	for value, name := range names {
		if name == string(text) {
			*e = value
			return nil
		}
	}
	return fmt.Errorf("unknown %s %q", kind, string(text))
}
