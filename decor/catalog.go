package decor

// Shape is a decor template with a base footprint multiplier and draw tier
type Shape struct {
	Name string
	Mult int // base footprint edge in cells
	Tier int // back-to-front draw order only
}

// Draw tiers
const (
	TierRock = 0
	TierBush = 1
	TierTree = 2
)

// DefaultCatalog returns the stock shape table
func DefaultCatalog() []Shape {
	return []Shape{
		{Name: "bush_01", Mult: 1, Tier: TierBush},
		{Name: "bush_02", Mult: 2, Tier: TierBush},
		{Name: "rock_01", Mult: 1, Tier: TierRock},
		{Name: "rock_02", Mult: 1, Tier: TierRock},
		{Name: "rock_01", Mult: 2, Tier: TierRock},
		{Name: "rock_02", Mult: 2, Tier: TierRock},
		{Name: "tree_01", Mult: 4, Tier: TierTree},
		{Name: "tree_02", Mult: 3, Tier: TierTree},
	}
}
