package sim

// EndReason tells why a game ended.
type EndReason int

const (
	EndNone    EndReason = iota
	EndHazard            // A lethal hazard touched the avatar
	EndNeglect           // An edible left the field uncollected
)

// String returns a short description of the reason.
func (r EndReason) String() string {
	switch r {
	case EndHazard:
		return "hit by a bubble"
	case EndNeglect:
		return "let food escape"
	default:
		return "none"
	}
}

// Events records what happened during one Machine.Step.
type Events struct {
	Started        bool // Menu -> Playing
	Ticked         bool // A simulation tick ran
	Hazard         *Hazard
	EdiblesSpawned int
	HazardsExpired int
	Neglected      []Edible
	Hit            *Hazard // First lethal hazard touching the avatar
	Collected      []Edible
	Ended          bool // Playing -> Ended
	Reason         EndReason
}

// Empty reports whether nothing noteworthy happened.
func (e Events) Empty() bool {
	return !e.Started && e.Hazard == nil && e.EdiblesSpawned == 0 &&
		e.HazardsExpired == 0 && len(e.Neglected) == 0 && e.Hit == nil &&
		len(e.Collected) == 0 && !e.Ended
}
