package enum

// MovementType classifies one stock ledger entry.
type MovementType string

const (
	MovementIn       MovementType = "IN"
	MovementOut      MovementType = "OUT"
	MovementTransfer MovementType = "TRANSFER"
	MovementDamage   MovementType = "DAMAGE"
)

// Valid reports whether the movement type is one of the known kinds.
func (m MovementType) Valid() bool {
	switch m {
	case MovementIn, MovementOut, MovementTransfer, MovementDamage:
		return true
	}
	return false
}
