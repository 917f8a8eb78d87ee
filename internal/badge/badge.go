// Package badge maps cumulative XP onto named progression tiers. The tier
// table is configuration; everything here is a pure function of it.
package badge

type Tier struct {
	Name  string `json:"name"`
	MinXP int    `json:"minXP"`
	MaxXP int    `json:"maxXP"` // -1 marks the unbounded top tier
}

// Tiers partition [0, inf) with no gaps or overlaps. A value exactly at a
// MinXP boundary belongs to that tier.
var Tiers = []Tier{
	{Name: "Iron", MinXP: 0, MaxXP: 499},
	{Name: "Silver", MinXP: 500, MaxXP: 1999},
	{Name: "Gold", MinXP: 2000, MaxXP: 4499},
	{Name: "Elite", MinXP: 4500, MaxXP: 6999},
	{Name: "Expert", MinXP: 7000, MaxXP: 9499},
	{Name: "Master", MinXP: 9500, MaxXP: -1},
}

// topTierSpan is a fixed width used for the unbounded tier so progress bars
// have something to render. Never used for gating.
const topTierSpan = 10000

// BadgeFor returns the tier name for a given XP total. Falls back to the
// lowest tier, which is unreachable with a well-formed table.
func BadgeFor(xp int) string {
	if t, ok := tierFor(xp); ok {
		return t.Name
	}
	return Tiers[0].Name
}

func tierFor(xp int) (Tier, bool) {
	for _, t := range Tiers {
		if xp >= t.MinXP && (t.MaxXP < 0 || xp <= t.MaxXP) {
			return t, true
		}
	}
	return Tier{}, false
}

type TierProgress struct {
	CurrentTier string `json:"current"`
	CurrentXP   int    `json:"currentXP"`
	XPIntoTier  int    `json:"xpIntoTier"`
	TierSpan    int    `json:"tierSpan"`
	NextTier    string `json:"nextBadge"`
	XPToNext    int    `json:"xpToNext"`
}

// Progress reports where xp sits inside its tier and what the next tier is.
// At the top tier NextTier repeats the current name and XPToNext is zero.
func Progress(xp int) TierProgress {
	t, ok := tierFor(xp)
	if !ok {
		t = Tiers[0]
	}
	p := TierProgress{
		CurrentTier: t.Name,
		CurrentXP:   xp,
		XPIntoTier:  xp - t.MinXP,
		TierSpan:    topTierSpan,
	}
	if t.MaxXP >= 0 {
		p.TierSpan = t.MaxXP - t.MinXP + 1
	}
	for _, next := range Tiers {
		if next.MinXP > xp {
			p.NextTier = next.Name
			p.XPToNext = next.MinXP - xp
			return p
		}
	}
	p.NextTier = t.Name
	p.XPToNext = 0
	return p
}
