package calc

import "strconv"

// Optional is an input that may be absent. The zero value is absent.
type Optional struct {
	Value float64
	Set   bool
}

// Some returns a present value
func Some(v float64) Optional {
	return Optional{Value: v, Set: true}
}

// None returns an absent value
func None() Optional {
	return Optional{}
}

// Get returns the value and whether it is present
func (o Optional) Get() (float64, bool) {
	return o.Value, o.Set
}

func (o Optional) String() string {
	if !o.Set {
		return "<none>"
	}
	return strconv.FormatFloat(o.Value, 'g', -1, 64)
}

// Absent lists the names of the absent values, pairing names[i] with values[i]
func Absent(names []string, values ...Optional) []string {
	var missing []string
	for i, v := range values {
		if !v.Set && i < len(names) {
			missing = append(missing, names[i])
		}
	}
	return missing
}
