// Package graph derives the decode contract a fixed-function arithmetic
// evaluator needs to recover packed parameters from the transport channels.
//
// The consuming evaluator (a material node graph) has no scripting, no
// bitwise operators, and no custom types; all it can do is add, multiply,
// divide, floor and modulo on scalars. A Plan describes, per parameter,
// the divisor and radix that peel its code out of the channel composite:
//
//	code = floor(channel / divisor) mod radix
//
// Plans are derived from a validated layout, so a plan shares the layout's
// fingerprint and must be regenerated whenever the layout changes. The
// Decode method evaluates the plan using only those five operations, which
// is how the tests prove the packed channels are recoverable inside the
// constrained evaluator.
package graph

import (
	"fmt"
	"math"

	"github.com/toonforge/shaderig/errs"
	"github.com/toonforge/shaderig/layout"
)

// Step extracts one parameter's code from its transport channel.
type Step struct {
	// Param is the parameter name, in layout wire order.
	Param string
	// Channel is the transport channel index the parameter lives in.
	Channel int
	// Divisor is the place value of the parameter's digit: the product of
	// the radixes of the parameters packed before it on the same channel.
	Divisor uint64
	// Radix is the parameter's level count.
	Radix uint64
}

// Expr renders the step as an arithmetic expression over the named channel
// variable, e.g. "mod(floor(ch1 / 65536), 5)".
func (s Step) Expr(channelVar string) string {
	if s.Divisor == 1 {
		return fmt.Sprintf("mod(floor(%s), %d)", channelVar, s.Radix)
	}

	return fmt.Sprintf("mod(floor(%s / %d), %d)", channelVar, s.Divisor, s.Radix)
}

// Plan is the complete decode recipe for one layout: one Step per parameter
// in wire order.
type Plan struct {
	steps       []Step
	channels    int
	fingerprint uint64
}

// NewPlan derives the decode plan for a validated layout.
func NewPlan(l *layout.Layout) *Plan {
	places := make([]uint64, l.Channels())
	for i := range places {
		places[i] = 1
	}

	steps := make([]Step, l.ParamCount())
	for i := range steps {
		d := l.Param(i)
		steps[i] = Step{
			Param:   d.Name,
			Channel: d.Channel,
			Divisor: places[d.Channel],
			Radix:   d.Radix(),
		}
		places[d.Channel] *= d.Radix()
	}

	return &Plan{
		steps:       steps,
		channels:    l.Channels(),
		fingerprint: l.Fingerprint(),
	}
}

// Steps returns the decode steps in wire order. The slice is a copy.
func (p *Plan) Steps() []Step {
	return append([]Step(nil), p.steps...)
}

// Channels returns the number of transport channels the plan reads.
func (p *Plan) Channels() int {
	return p.channels
}

// Fingerprint returns the fingerprint of the layout this plan was derived
// from. A decoder built from this plan is valid only against data packed
// with a layout of the same fingerprint.
func (p *Plan) Fingerprint() uint64 {
	return p.fingerprint
}

// Expressions renders every step against channel variables named
// prefix0..prefixN, in wire order.
func (p *Plan) Expressions(prefix string) []string {
	exprs := make([]string, len(p.steps))
	for i, s := range p.steps {
		exprs[i] = s.Expr(fmt.Sprintf("%s%d", prefix, s.Channel))
	}

	return exprs
}

// Decode evaluates the plan the way the constrained evaluator would, using
// nothing beyond floating-point divide, floor and modulo. Used to verify
// that packed channels decode exactly under the evaluator's operation set.
func (p *Plan) Decode(channels []float32) ([]uint32, error) {
	if len(channels) != p.channels {
		return nil, fmt.Errorf("%w: plan reads %d channels, got %d",
			errs.ErrChannelCountMismatch, p.channels, len(channels))
	}

	codes := make([]uint32, len(p.steps))
	for i, s := range p.steps {
		v := float64(channels[s.Channel])
		code := math.Mod(math.Floor(v/float64(s.Divisor)), float64(s.Radix))
		codes[i] = uint32(code)
	}

	return codes, nil
}
