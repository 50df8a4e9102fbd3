package unisig

// Block is a named, contiguous range of Unicode code points.
type Block struct {
	Start rune   // First code point of the block.
	End   rune   // Last code point of the block.
	Label string // Block name, e.g. "Basic Latin".
}

// NoBlock is returned by [BlockOf] for code points that are not part of any
// block in the pinned Unicode version.
var NoBlock = Block{Start: -1, End: -1, Label: "No_Block"}

// String returns the block label.
func (b Block) String() string {
	return b.Label
}

// Contains reports whether r lies within the block.
func (b Block) Contains(r rune) bool {
	return b.Start >= 0 && r >= b.Start && r <= b.End
}

// BlockOf returns the Unicode block of the given code point while fast
// tracking ASCII characters.
func BlockOf(r rune) Block {
	if r >= 0 && r < 0x80 {
		return blockEntry(blockTable[0])
	}
	return blockEntry(blockSearch(r))
}

// Blocks returns all blocks of the pinned Unicode version in code point
// order.
func Blocks() []Block {
	blocks := make([]Block, len(blockTable))
	for i, entry := range blockTable {
		blocks[i] = blockEntry(entry)
	}
	return blocks
}

// blockSearch performs a binary search on the sorted block table. It returns
// a zero-initialized entry if r is not within any block.
func blockSearch(r rune) (result blockRange) {
	from := 0
	to := len(blockTable)
	for to > from {
		middle := (from + to) / 2
		cpRange := blockTable[middle]
		if r < cpRange.lo {
			to = middle
			continue
		}
		if r > cpRange.hi {
			from = middle + 1
			continue
		}
		return cpRange
	}
	return
}

func blockEntry(entry blockRange) Block {
	if entry.label == "" {
		return NoBlock
	}
	return Block{Start: entry.lo, End: entry.hi, Label: entry.label}
}

// blockRange is one line of the generated block table.
type blockRange struct {
	lo, hi rune
	label  string
}
