package services

import "sync/atomic"

// PremiumGate reflects the premium flag of the last transactions list. It
// only drives what is shown; the server enforces premium on writes.
type PremiumGate struct {
	premium atomic.Bool
}

// NewPremiumGate returns a gate already in the given state. Services start
// closed and open once a transactions list says so.
func NewPremiumGate(premium bool) *PremiumGate {
	g := &PremiumGate{}
	g.set(premium)
	return g
}

func (g *PremiumGate) set(v bool) { g.premium.Store(v) }

func (g *PremiumGate) IsPremium() bool { return g.premium.Load() }

func (g *PremiumGate) OrganizationsVisible() bool { return g.IsPremium() }

// BannerVisible reports whether the upgrade banner should be shown.
func (g *PremiumGate) BannerVisible() bool { return !g.IsPremium() }
