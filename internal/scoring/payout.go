package scoring

// PayoutTable converts a faan total into dollars. Hands below three faan
// pay nothing, each faan above three doubles Base, and every hand at or
// above CapThreshold pays Cap.
type PayoutTable struct {
	Name         string
	Base         int
	CapThreshold int
	Cap          int
}

var (
	// Classic is the 一二蚊 schedule: $32 at 3 faan, doubling up to the
	// $1,024 cap from 8 faan. This is the canonical table.
	Classic = PayoutTable{Name: "classic", Base: 32, CapThreshold: 8, Cap: 1024}

	// LowStakes halves the base and caps one faan later.
	LowStakes = PayoutTable{Name: "low-stakes", Base: 16, CapThreshold: 9, Cap: 1024}
)

// TableByName resolves a table from config; unknown names fall back to Classic.
func TableByName(name string) PayoutTable {
	if name == LowStakes.Name {
		return LowStakes
	}
	return Classic
}

// Payout is total over all integer inputs; negative and sub-minimum faan
// counts simply pay zero.
func (t PayoutTable) Payout(faan int) int {
	if faan < 3 {
		return 0
	}
	if faan >= t.CapThreshold {
		return t.Cap
	}
	return t.Base << (faan - 3)
}
