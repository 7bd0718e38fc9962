package game

// Planet is a stationary entity that produces ships while owned.
type Planet struct {
	ID          int          `json:"id"`
	Owner       Player       `json:"owner"`
	NShips      float64      `json:"n_ships"`
	GrowthRate  float64      `json:"growth_rate"`
	Position    Vec2         `json:"position"`
	Radius      float64      `json:"radius"`
	Transporter *Transporter `json:"transporter,omitempty"` // At most one fleet in flight per planet
}

// Transporter is a fleet in flight between two planets.
type Transporter struct {
	S                Vec2    `json:"s"` // Current position
	V                Vec2    `json:"v"` // Velocity per tick
	Owner            Player  `json:"owner"`
	SourceIndex      int     `json:"source_index"`
	DestinationIndex int     `json:"destination_index"`
	NShips           float64 `json:"n_ships"`
}

// IsBusy reports whether the planet already has a fleet in flight and so cannot launch another.
func (p *Planet) IsBusy() bool {
	return p.Transporter != nil
}

// Copy returns a deep copy of the planet, including its transporter.
func (p *Planet) Copy() *Planet {
	c := *p
	if p.Transporter != nil {
		t := *p.Transporter
		c.Transporter = &t
	}
	return &c
}
