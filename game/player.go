package game

import "fmt"

// Player identifies the owner of a planet or transporter.
type Player int

const (
	Neutral Player = iota
	Player1
	Player2
)

func (p Player) String() string {
	switch p {
	case Neutral:
		return "Neutral"
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	default:
		return fmt.Sprintf("Player(%d)", int(p))
	}
}

// Opponent returns the other playing side. Neutral has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return Neutral
	}
}

// IsValid reports whether p is one of the three known owners.
func (p Player) IsValid() bool {
	return p == Neutral || p == Player1 || p == Player2
}

func (p Player) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("invalid player %d", int(p))
	}
	return []byte(p.String()), nil
}

func (p *Player) UnmarshalText(text []byte) error {
	parsed, err := ParsePlayer(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePlayer accepts the display names as well as the shorthand "1", "2" and "0".
func ParsePlayer(s string) (Player, error) {
	switch s {
	case "Neutral", "neutral", "0":
		return Neutral, nil
	case "Player1", "player1", "1":
		return Player1, nil
	case "Player2", "player2", "2":
		return Player2, nil
	}
	return Neutral, fmt.Errorf("unknown player %q", s)
}
