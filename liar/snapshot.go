package liar

type Seat struct {
	Name  string `json:"name"`
	Cards int    `json:"cards"`
	Out   bool   `json:"out"`
}

// Snapshot is what a table shows to everybody: no hand contents, no chambers order.
type Snapshot struct {
	ID        string  `json:"id"`
	Seats     []Seat  `json:"seats"`
	Current   string  `json:"current"`
	Last      *Action `json:"last"`
	Phase     Phase   `json:"phase"`
	Winner    string  `json:"winner"`
	Rules     Rules   `json:"rules"`
	Deck      int     `json:"deck"`
	Discarded int     `json:"discarded"`
	Chambers  int     `json:"chambers"`
}

func (s Snapshot) Seat(name string) (Seat, bool) {
	for _, seat := range s.Seats {
		if seat.Name == name {
			return seat, true
		}
	}
	return Seat{}, false
}
