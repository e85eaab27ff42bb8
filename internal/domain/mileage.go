package domain

// Mileage is a tagged mileage allowance: either unlimited or a concrete
// number of kilometers. The legacy documents encode "unlimited" as -1; that
// sentinel is confined to the persistence layer, which converts it to and
// from this type.
type Mileage struct {
	Unlimited bool    `json:"unlimited"`
	Km        float64 `json:"km"`
}

func UnlimitedMileage() Mileage {
	return Mileage{Unlimited: true}
}

func LimitedMileage(km float64) Mileage {
	return Mileage{Km: km}
}

// Times scales a per-day allowance to a rental duration. Unlimited stays
// unlimited regardless of the day count.
func (m Mileage) Times(days int) Mileage {
	if m.Unlimited {
		return m
	}
	return Mileage{Km: m.Km * float64(days)}
}
