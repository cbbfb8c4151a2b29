package xorcipher

// Strength grades a key by its length. It is independent of key validity:
// an empty key is Weak and also rejected by Transform.
type Strength int

const (
	Weak Strength = iota
	Moderate
	Strong
)

const (
	moderateKeyLen = 6
	strongKeyLen   = 12
)

func (s Strength) String() string {
	switch s {
	case Strong:
		return "strong"
	case Moderate:
		return "moderate"
	default:
		return "weak"
	}
}

// ClassifyStrength grades key by its length in bytes.
func ClassifyStrength(key string) Strength {
	switch n := len(key); {
	case n >= strongKeyLen:
		return Strong
	case n >= moderateKeyLen:
		return Moderate
	default:
		return Weak
	}
}
