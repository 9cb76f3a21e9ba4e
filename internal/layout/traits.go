package layout

import "strings"

// SizeClass describes the horizontal space regime the grid renders into.
// Compact terminals get the tighter gutter.
type SizeClass int

const (
	ClassRegular SizeClass = iota
	ClassCompact
)

// String returns a human-readable name for the size class
func (c SizeClass) String() string {
	if c == ClassCompact {
		return "compact"
	}
	return "regular"
}

// ParseSizeClass converts a config string to a SizeClass
func ParseSizeClass(s string) SizeClass {
	if strings.EqualFold(s, "compact") {
		return ClassCompact
	}
	return ClassRegular
}

// SizeCategory is an ordered content-size scale. Larger categories widen the
// minimum tile so the grid settles on fewer, larger columns.
type SizeCategory int

const (
	CategorySmall SizeCategory = iota
	CategoryMedium
	CategoryLarge
	CategoryExtraLarge
	CategoryAccessibility
	CategoryAccessibilityLarge
)

// String returns a human-readable name for the size category
func (c SizeCategory) String() string {
	switch c {
	case CategorySmall:
		return "small"
	case CategoryMedium:
		return "medium"
	case CategoryLarge:
		return "large"
	case CategoryExtraLarge:
		return "xlarge"
	case CategoryAccessibility:
		return "accessibility"
	case CategoryAccessibilityLarge:
		return "accessibility-large"
	default:
		return "unknown"
	}
}

// ParseSizeCategory converts a config string to a SizeCategory
func ParseSizeCategory(s string) SizeCategory {
	switch strings.ToLower(s) {
	case "small":
		return CategorySmall
	case "large":
		return CategoryLarge
	case "xlarge":
		return CategoryExtraLarge
	case "accessibility":
		return CategoryAccessibility
	case "accessibility-large":
		return CategoryAccessibilityLarge
	default:
		return CategoryMedium
	}
}

// Larger returns the next category up, saturating at the top of the scale.
func (c SizeCategory) Larger() SizeCategory {
	if c >= CategoryAccessibilityLarge {
		return CategoryAccessibilityLarge
	}
	return c + 1
}

// Smaller returns the next category down, saturating at the bottom.
func (c SizeCategory) Smaller() SizeCategory {
	if c <= CategorySmall {
		return CategorySmall
	}
	return c - 1
}

// scale returns the percentage applied to a strategy's minimum tile width.
func (c SizeCategory) scale() int {
	switch c {
	case CategorySmall, CategoryMedium:
		return 100
	case CategoryLarge:
		return 115
	case CategoryExtraLarge:
		return 130
	case CategoryAccessibility:
		return 150
	case CategoryAccessibilityLarge:
		return 175
	default:
		return 100
	}
}

// Traits carries the per-pass environment inputs for column sizing.
// They are explicit parameters: the layout core never reads globals.
type Traits struct {
	Category SizeCategory
	Class    SizeClass
}

// DefaultTraits returns the regular, medium-category traits
func DefaultTraits() Traits {
	return Traits{Category: CategoryMedium, Class: ClassRegular}
}
