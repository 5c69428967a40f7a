package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// ItemKind identifies a collectible.
type ItemKind int

const (
	ItemApple ItemKind = iota
	ItemBonus
	ItemShield
	ItemPotion
)

// itemKinds is the fixed iteration order over the item set.
var itemKinds = []ItemKind{ItemApple, ItemBonus, ItemShield, ItemPotion}

// String returns the item name.
func (k ItemKind) String() string {
	switch k {
	case ItemApple:
		return "apple"
	case ItemBonus:
		return "bonus"
	case ItemShield:
		return "shield"
	case ItemPotion:
		return "potion"
	default:
		return "unknown"
	}
}

// Item is a collectible on the board.
type Item struct {
	Kind      ItemKind
	Cell      core.Cell
	Remaining int // ticks left; apples never expire

	Score  int
	Growth int
	Heal   int
}

// Timed reports whether the item expires.
func (it Item) Timed() bool {
	return it.Kind != ItemApple
}
