// Package presentation turns engine results into the cues a client plays:
// sounds, confetti bursts and the disco ball. It holds no game rules.
package presentation

import (
	"github.com/rocketscienceinc/disco-tictactoe/internal/entity"
	"github.com/rocketscienceinc/disco-tictactoe/internal/tictactoe"
)

type CueKind string

const (
	CueSound     CueKind = "sound"
	CueConfetti  CueKind = "confetti"
	CueDiscoBall CueKind = "disco_ball"
)

const (
	SoundClick = "click"
	SoundMove  = "move"
	SoundWin   = "win"
)

// Palette is the disco glow and confetti colours, in cycling order.
var Palette = []string{
	"#FF3366",
	"#33CCFF",
	"#FFCC33",
	"#33FF99",
	"#CC33FF",
	"#FF6633",
}

type Sound struct {
	Name   string  `json:"name"`
	Volume float64 `json:"volume"`
	Rate   float64 `json:"rate"`
}

type Confetti struct {
	ParticleCount int      `json:"particle_count"`
	Spread        int      `json:"spread"`
	OriginY       float64  `json:"origin_y"`
	IntervalMS    int      `json:"interval_ms"`
	Colors        []string `json:"colors"`
}

// Cue is one thing the client should do. Exactly one of the payload fields is
// set, matching Kind.
type Cue struct {
	Kind      CueKind   `json:"kind"`
	Sound     *Sound    `json:"sound,omitempty"`
	Confetti  *Confetti `json:"confetti,omitempty"`
	DiscoBall *bool     `json:"disco_ball,omitempty"`
}

type Settings struct {
	SoundEnabled bool `json:"sound_enabled"`
	DiscoMode    bool `json:"disco_mode"`
}

type Planner struct {
	settings Settings
}

func NewPlanner(settings Settings) *Planner {
	return &Planner{settings: settings}
}

func (that *Planner) Settings() Settings {
	return that.settings
}

// ForMove plans the cues for a move attempt. Rejected moves are silent.
func (that *Planner) ForMove(result tictactoe.MoveResult) []Cue {
	if !result.Accepted {
		return nil
	}

	rate := 0.8
	if result.Player == entity.PlayerX {
		rate = 1.2
	}

	cues := that.sound(Sound{Name: SoundMove, Volume: 0.4, Rate: rate})

	if result.Transition.Kind == entity.TransitionBecameWin {
		cues = append(cues, that.sound(Sound{Name: SoundWin, Volume: 0.6, Rate: 1})...)
		cues = append(cues, Cue{Kind: CueConfetti, Confetti: celebration()})
		cues = append(cues, discoBall(true))
	}

	return cues
}

// ForReset plans the cues for both game and score resets.
func (that *Planner) ForReset() []Cue {
	return append(that.click(), discoBall(false))
}

// ToggleSound flips sound on or off. Turning it on is confirmed with a click.
func (that *Planner) ToggleSound() []Cue {
	that.settings.SoundEnabled = !that.settings.SoundEnabled

	return that.click()
}

func (that *Planner) click() []Cue {
	return that.sound(Sound{Name: SoundClick, Volume: 0.5, Rate: 1})
}

func (that *Planner) sound(sound Sound) []Cue {
	if !that.settings.SoundEnabled {
		return nil
	}

	return []Cue{{Kind: CueSound, Sound: &sound}}
}

func celebration() *Confetti {
	return &Confetti{
		ParticleCount: 50,
		Spread:        70,
		OriginY:       0.6,
		IntervalMS:    300,
		Colors:        append([]string(nil), Palette...),
	}
}

func discoBall(visible bool) Cue {
	return Cue{Kind: CueDiscoBall, DiscoBall: &visible}
}
