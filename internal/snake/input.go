package snake

// Symbol is one polled input value. NoInput stands for an empty poll.
type Symbol rune

const (
	NoInput  Symbol = 0
	SymUp    Symbol = 'w'
	SymLeft  Symbol = 'a'
	SymRight Symbol = 'd'
	SymDown  Symbol = 's'
	SymPause Symbol = 'p'
	SymQuit  Symbol = 'q'
)

// moveOrder lists the movement symbols indexed by Direction.
const moveOrder = "wads"

// Resolve maps a movement symbol to a heading. Unknown symbols and the
// reverse of current yield ok == false.
func Resolve(sym Symbol, current Direction) (Direction, bool) {
	for i, r := range moveOrder {
		if Symbol(r) != sym {
			continue
		}
		d := Direction(i)
		if d == current.Reverse() {
			return current, false
		}
		return d, true
	}
	return current, false
}

// SymbolFor returns the movement symbol that steers towards d.
func SymbolFor(d Direction) Symbol {
	if d > Down {
		return NoInput
	}
	return Symbol(moveOrder[d])
}
