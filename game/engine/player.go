package engine

import (
	"fmt"
	"math"
)

// Player is a participant's mutable record. Counters are unsigned and never wrap.
type Player struct {
	name     string
	coins    uint
	stars    uint
	position Coordinate
}

// NewPlayer creates a player with no coins or stars standing at start
func NewPlayer(name string, start Coordinate) *Player {
	return &Player{name: name, position: start}
}

// Name returns the player's name
func (p *Player) Name() string { return p.name }

// Coins returns the player's coin count
func (p *Player) Coins() uint { return p.coins }

// Stars returns the player's star count
func (p *Player) Stars() uint { return p.stars }

// Position returns the player's current coordinate
func (p *Player) Position() Coordinate { return p.position }

// AddCoins adds n coins, saturating at the maximum uint
func (p *Player) AddCoins(n uint) {
	p.coins = saturatingAdd(p.coins, n)
}

// ReduceCoins removes n coins, flooring at zero
func (p *Player) ReduceCoins(n uint) {
	if n >= p.coins {
		p.coins = 0
		return
	}
	p.coins -= n
}

// AddStars adds n stars, saturating at the maximum uint
func (p *Player) AddStars(n uint) {
	p.stars = saturatingAdd(p.stars, n)
}

// ResetPosition moves the player to c
func (p *Player) ResetPosition(c Coordinate) {
	p.position = c
}

// Apply applies the effect of landing on a cell of the given kind
func (p *Player) Apply(kind CellKind) Effect {
	effect := Effect{Kind: kind}

	switch kind {
	case WinCoin:
		p.AddCoins(WinCoinReward)
		effect.CoinsDelta = WinCoinReward
	case LostCoin:
		p.ReduceCoins(LostCoinPenalty)
		effect.CoinsDelta = -LostCoinPenalty
	case Star:
		p.AddStars(StarReward)
		effect.StarsDelta = StarReward
	}

	return effect
}

// String formats the player's status line
func (p *Player) String() string {
	return fmt.Sprintf("%s 👤 -> Coins: %d | Stars: %d | Position: %s", p.name, p.coins, p.stars, p.position)
}

func saturatingAdd(a, b uint) uint {
	if a > math.MaxUint-b {
		return math.MaxUint
	}
	return a + b
}
