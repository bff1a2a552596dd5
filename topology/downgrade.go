package topology

import "fmt"

// A Downgrade records a parameter that was silently replaced by a supported
// value. Downgrades never fail a build.
type Downgrade struct {
	Feature   string
	Requested string
	Effective string
}

func (d Downgrade) String() string {
	return fmt.Sprintf("%s: requested %s, using %s",
		d.Feature, d.Requested, d.Effective)
}
