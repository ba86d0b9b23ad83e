// tuner/io_json.go
package tuner

import (
	"encoding/json"
	"fmt"
	"os"

	"chess-evolution/engine"
)

const populationLayoutTag = "strategy_v1"

type strategyJSON struct {
	Capturing    float64 `json:"capturing"`
	RunAway      float64 `json:"run_away"`
	RiskAversion float64 `json:"risk_aversion"`
	Castling     float64 `json:"castling"`
	Promotion    int     `json:"promotion"`
	Winning      float64 `json:"winning,omitempty"`
	Material     float64 `json:"material,omitempty"`
}

type populationJSON struct {
	Layout     string         `json:"layout"`
	Generation int            `json:"generation"`
	White      []strategyJSON `json:"white"`
	Black      []strategyJSON `json:"black"`
}

func toJSON(pop []*engine.Strategy) []strategyJSON {
	res := make([]strategyJSON, len(pop))
	for i, s := range pop {
		res[i] = strategyJSON{
			Capturing:    s.Capturing,
			RunAway:      s.RunAway,
			RiskAversion: s.RiskAversion,
			Castling:     s.Castling,
			Promotion:    s.Promotion,
			Winning:      s.Score.Winning,
			Material:     s.Score.Material,
		}
	}
	return res
}

func fromJSON(pop []strategyJSON) []*engine.Strategy {
	res := make([]*engine.Strategy, len(pop))
	for i, s := range pop {
		res[i] = &engine.Strategy{
			Capturing:    s.Capturing,
			RunAway:      s.RunAway,
			RiskAversion: s.RiskAversion,
			Castling:     s.Castling,
			Promotion:    s.Promotion,
			Score:        engine.Score{Winning: s.Winning, Material: s.Material},
		}
	}
	return res
}

// SaveJSON writes both populations to path through a temporary file.
func SaveJSON(path string, generation int, white, black []*engine.Strategy) error {
	payload := populationJSON{
		Layout:     populationLayoutTag,
		Generation: generation,
		White:      toJSON(white),
		Black:      toJSON(black),
	}
	tmp := path + ".tmp"
	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LoadJSON reads populations written by SaveJSON.
func LoadJSON(path string) (generation int, white, black []*engine.Strategy, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, nil, nil, err
	}
	var p populationJSON
	if err := json.Unmarshal(b, &p); err != nil {
		return 0, nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	if p.Layout != populationLayoutTag {
		return 0, nil, nil, fmt.Errorf("%s: unknown layout %q", path, p.Layout)
	}
	return p.Generation, fromJSON(p.White), fromJSON(p.Black), nil
}

// Save writes the trainer's populations to path.
func (t *Trainer) Save(path string) error {
	return SaveJSON(path, t.Generation, t.White, t.Black)
}

// Load replaces the trainer's populations with the ones stored at path.
func (t *Trainer) Load(path string) error {
	gen, white, black, err := LoadJSON(path)
	if err != nil {
		return err
	}
	t.Generation, t.White, t.Black = gen, white, black
	return nil
}
