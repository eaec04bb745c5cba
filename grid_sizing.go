package desky

import "math"

// SizingKind is the strategy that sizes one grid track. Kinds are listed in
// evaluation priority.
//
//	| Kind       | Primary size                       | Extra from the remainder pass |
//	|------------|------------------------------------|-------------------------------|
//	| Fixed      | literal size                       | none                          |
//	| Child      | widest/tallest assigned child      | none                          |
//	| Percentage | floor(usable * fraction)           | at most one unit              |
//	| Custom     | SizeFunc(usable, unallocated)      | ExtraFunc(leftover)           |
//	| Even       | equal share of what is left        | at most one unit              |
//	| Fill       | everything still left (first only) | none                          |
type SizingKind int

const (
	SizeEven SizingKind = iota
	SizeFixed
	SizeChild
	SizePercentage
	SizeCustom
	SizeFill
)

func (k SizingKind) String() string {
	switch k {
	case SizeEven:
		return "even"
	case SizeFixed:
		return "fixed"
	case SizeChild:
		return "child"
	case SizePercentage:
		return "percentage"
	case SizeCustom:
		return "custom"
	case SizeFill:
		return "fill"
	default:
		return "unknown"
	}
}

// Sizing is the sizing spec of one column or row. The zero value is Even.
type Sizing struct {
	Kind SizingKind

	// Size is the literal size for Fixed.
	Size int

	// Fraction is the share of the usable size for Percentage.
	Fraction float64

	// SizeFunc returns a Custom track's base size given the usable size and
	// the size not yet allocated when it is called.
	SizeFunc func(usable, unallocated int) int

	// ExtraFunc returns how much of the current leftover a Custom track
	// takes during the remainder pass. The result is clamped to
	// [0, leftover].
	ExtraFunc func(leftover int) int
}

// Fixed sizes a track to exactly size (negative sizes become zero).
func Fixed(size int) Sizing {
	return Sizing{Kind: SizeFixed, Size: max(size, 0)}
}

// Child sizes a track to its largest assigned child.
func Child() Sizing {
	return Sizing{Kind: SizeChild}
}

// Percentage sizes a track to a fraction of the usable size.
func Percentage(fraction float64) Sizing {
	return Sizing{Kind: SizePercentage, Fraction: fraction}
}

// Custom sizes a track with caller functions. extra may be nil.
func Custom(size func(usable, unallocated int) int, extra func(leftover int) int) Sizing {
	return Sizing{Kind: SizeCustom, SizeFunc: size, ExtraFunc: extra}
}

// Even splits the remaining size equally with the other Even tracks.
func Even() Sizing {
	return Sizing{}
}

// Fill takes all space left after Even. Only the first Fill track of an
// axis receives space.
func Fill() Sizing {
	return Sizing{Kind: SizeFill}
}

// computeTracks sizes one axis. childSize reports the Child measure of a
// track. Negative intermediate sizes are floored to zero.
func computeTracks(sizings []Sizing, usable int, childSize func(track int) int) []int {
	sizes := make([]int, len(sizings))
	var groups [SizeFill + 1][]int
	for i, s := range sizings {
		groups[s.Kind] = append(groups[s.Kind], i)
	}
	allocated := func() int {
		total := 0
		for _, s := range sizes {
			total += s
		}
		return total
	}

	// Primary pass, in priority order.
	for _, i := range groups[SizeFixed] {
		sizes[i] = sizings[i].Size
	}
	for _, i := range groups[SizeChild] {
		sizes[i] = max(childSize(i), 0)
	}
	for _, i := range groups[SizePercentage] {
		sizes[i] = max(int(math.Floor(float64(usable)*sizings[i].Fraction)), 0)
	}
	for _, i := range groups[SizeCustom] {
		if fn := sizings[i].SizeFunc; fn != nil {
			sizes[i] = max(fn(usable, usable-allocated()), 0)
		}
	}
	if even := groups[SizeEven]; len(even) > 0 {
		share := max(usable-allocated(), 0) / len(even)
		for _, i := range even {
			sizes[i] = share
		}
	}
	if fill := groups[SizeFill]; len(fill) > 0 {
		sizes[fill[0]] = max(usable-allocated(), 0)
	}

	// Remainder pass.
	leftover := max(usable-allocated(), 0)
	for _, i := range groups[SizePercentage] {
		if leftover == 0 {
			break
		}
		sizes[i]++
		leftover--
	}
	for _, i := range groups[SizeCustom] {
		fn := sizings[i].ExtraFunc
		if fn == nil || leftover == 0 {
			continue
		}
		amount := min(max(fn(leftover), 0), leftover)
		sizes[i] += amount
		leftover -= amount
	}
	for _, i := range groups[SizeEven] {
		if leftover == 0 {
			break
		}
		sizes[i]++
		leftover--
	}

	return sizes
}
