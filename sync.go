package mchkb

import (
	"github.com/brutella/hap/log"
)

// publishedInt remembers the value last pushed to HomeKit for one integer
// characteristic so redundant notifications are suppressed. This is only a
// notification guard; it never stands in for a remote call.
type publishedInt struct {
	label string
	value int
}

// sync pushes v when it differs from the last published value and reports
// whether a publish happened.
func (p *publishedInt) sync(v int, push func(int)) bool {
	if p.value == v {
		return false
	}
	log.Info.Printf("updating HomeKit: [%s] %d -> %d", p.label, p.value, v)
	push(v)
	p.value = v
	return true
}

// publishedFloat is the float counterpart of publishedInt.
type publishedFloat struct {
	label string
	value float64
}

func (p *publishedFloat) sync(v float64, push func(float64)) bool {
	if p.value == v {
		return false
	}
	log.Info.Printf("updating HomeKit: [%s] %g -> %g", p.label, p.value, v)
	push(v)
	p.value = v
	return true
}
