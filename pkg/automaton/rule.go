package automaton

// Neighborhood packs a three-cell neighborhood into a rule index with the
// left cell as the most significant bit.
func Neighborhood(left, center, right bool) uint8 {
	return bit(left)<<2 | bit(center)<<1 | bit(right)
}

// Lookup reports whether rule maps the packed neighborhood idx to a live cell.
func Lookup(rule, idx uint8) bool {
	return (rule>>(idx&7))&1 != 0
}

func bit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
