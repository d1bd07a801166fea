package plotter

import (
	"fmt"
	"math"
	"time"
)

type ScalerConstraint interface {
	~float64 | ~string | time.Time
}

// Domain describes the logical extent of a continuous scaler. Diff and
// Value convert between logical values and offsets from the domain start.
type Domain[T ScalerConstraint] interface {
	Diff(T) float64
	Value(float64) T
	Extend() float64
	Values(int) []T
	Merge(Domain[T]) (Domain[T], error)
}

type numberDomain struct {
	fst float64
	lst float64
}

func NumberDomain(f, t float64) Domain[float64] {
	return numberDomain{
		fst: f,
		lst: t,
	}
}

func (n numberDomain) Merge(other Domain[float64]) (Domain[float64], error) {
	d, ok := other.(numberDomain)
	if !ok {
		return nil, fmt.Errorf("domain can not be merged")
	}
	x := n
	if n.fst > d.fst {
		x.fst = d.fst
	}
	if n.lst < d.lst {
		x.lst = d.lst
	}
	return x, nil
}

func (n numberDomain) Diff(v float64) float64 {
	return v - n.fst
}

func (n numberDomain) Value(d float64) float64 {
	return n.fst + d
}

func (n numberDomain) Extend() float64 {
	return n.lst - n.fst
}

func (n numberDomain) Values(c int) []float64 {
	if c <= 0 {
		return []float64{n.fst, n.lst}
	}
	var (
		all  = make([]float64, c)
		step = n.Extend() / float64(c)
	)
	for i := 0; i < c; i++ {
		all[i] = n.fst + float64(i)*step
	}
	all = append(all, n.lst)
	return all
}

type timeDomain struct {
	fst time.Time
	lst time.Time
}

func TimeDomain(f, t time.Time) Domain[time.Time] {
	return timeDomain{
		fst: f,
		lst: t,
	}
}

func (t timeDomain) Merge(other Domain[time.Time]) (Domain[time.Time], error) {
	d, ok := other.(timeDomain)
	if !ok {
		return nil, fmt.Errorf("domain can not be merged")
	}
	n := t
	if t.fst.After(d.fst) {
		n.fst = d.fst
	}
	if t.lst.Before(d.lst) {
		n.lst = d.lst
	}
	return n, nil
}

func (t timeDomain) Diff(v time.Time) float64 {
	diff := v.Sub(t.fst)
	return float64(diff)
}

func (t timeDomain) Value(d float64) time.Time {
	return t.fst.Add(time.Duration(d))
}

func (t timeDomain) Extend() float64 {
	diff := t.lst.Sub(t.fst)
	return float64(diff)
}

func (t timeDomain) Values(c int) []time.Time {
	if c <= 0 {
		return []time.Time{t.fst, t.lst}
	}
	var (
		all  = make([]time.Time, c)
		step = t.Extend() / float64(c)
	)
	for i := 0; i < c; i++ {
		all[i] = t.fst.Add(time.Duration(float64(i) * step))
	}
	all = append(all, t.lst)
	return all
}

// Range is the pixel span a scaler maps into. A descending range (F > T)
// reverses the mapping.
type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Reverse() Range {
	return Range{
		F: r.T,
		T: r.F,
	}
}

func (r Range) Max() float64 {
	return r.T
}

func (r Range) Min() float64 {
	return r.F
}

// Scaler maps logical values into a pixel range and back. Scale is
// monotonic over the domain; values outside the domain extrapolate and may
// land outside the range. Invert reports false only for discrete scalers
// when the pixel falls outside every slot.
type Scaler[T ScalerConstraint] interface {
	Scale(T) float64
	Invert(float64) (T, bool)
	Space() float64
	Values(int) []T
	Max() float64
	Min() float64

	replace(Range) Scaler[T]
}

type numberScaler struct {
	Range
	Domain[float64]
}

func NumberScaler(dom Domain[float64], rg Range) Scaler[float64] {
	return numberScaler{
		Range:  rg,
		Domain: dom,
	}
}

func (n numberScaler) Scale(v float64) float64 {
	if n.Extend() == 0 {
		return n.Min() + n.Len()/2
	}
	return n.Min() + n.Diff(v)*n.Space()
}

func (n numberScaler) Invert(p float64) (float64, bool) {
	if n.Extend() == 0 || n.Len() == 0 {
		return n.Value(0), true
	}
	return n.Value((p - n.Min()) / n.Space()), true
}

func (n numberScaler) Space() float64 {
	if n.Extend() == 0 {
		return 0
	}
	return n.Len() / n.Extend()
}

func (n numberScaler) replace(rg Range) Scaler[float64] {
	x := n
	x.Range = rg
	return x
}

type timeScaler struct {
	Range
	Domain[time.Time]
}

func TimeScaler(dom Domain[time.Time], rg Range) Scaler[time.Time] {
	return timeScaler{
		Range:  rg,
		Domain: dom,
	}
}

func (s timeScaler) Scale(v time.Time) float64 {
	if s.Extend() == 0 {
		return s.Min() + s.Len()/2
	}
	return s.Min() + s.Diff(v)*s.Space()
}

func (s timeScaler) Invert(p float64) (time.Time, bool) {
	if s.Extend() == 0 || s.Len() == 0 {
		return s.Value(0), true
	}
	return s.Value((p - s.Min()) / s.Space()), true
}

func (s timeScaler) Space() float64 {
	if s.Extend() == 0 {
		return 0
	}
	return s.Len() / s.Extend()
}

func (s timeScaler) replace(rg Range) Scaler[time.Time] {
	x := s
	x.Range = rg
	return x
}

// SlotAnchor selects where inside its slot a category value maps: the slot
// start for bars, the center for point charts.
type SlotAnchor int

const (
	SlotStart SlotAnchor = iota
	SlotCenter
	SlotEnd
)

func (a SlotAnchor) fraction() float64 {
	switch a {
	case SlotCenter:
		return 0.5
	case SlotEnd:
		return 1
	default:
		return 0
	}
}

type stringScaler struct {
	Range
	Strings []string
	Anchor  SlotAnchor
}

func StringScaler(str []string, rg Range) Scaler[string] {
	return stringScaler{
		Range:   rg,
		Strings: str,
		Anchor:  SlotCenter,
	}
}

func StringScalerAnchored(str []string, anchor SlotAnchor, rg Range) Scaler[string] {
	return stringScaler{
		Range:   rg,
		Strings: str,
		Anchor:  anchor,
	}
}

func (s stringScaler) Scale(v string) float64 {
	var x int
	for i := range s.Strings {
		if s.Strings[i] == v {
			x = i
			break
		}
	}
	return s.Min() + (float64(x)+s.Anchor.fraction())*s.Space()
}

func (s stringScaler) Invert(p float64) (string, bool) {
	if len(s.Strings) == 0 || s.Space() == 0 {
		return "", false
	}
	f := (p - s.Min()) / s.Space()
	x := int(math.Floor(f))
	if x < 0 || x >= len(s.Strings) {
		return "", false
	}
	return s.Strings[x], true
}

func (s stringScaler) Space() float64 {
	if len(s.Strings) == 0 {
		return 0
	}
	return s.Len() / float64(len(s.Strings))
}

func (s stringScaler) Values(c int) []string {
	if c > 0 && c < len(s.Strings) {
		return s.Strings[:c]
	}
	return s.Strings
}

func (s stringScaler) Merge(values []string) Scaler[string] {
	var (
		list  []string
		seen  = make(map[string]struct{})
		empty = struct{}{}
	)
	merge := func(values []string) {
		for _, v := range values {
			_, ok := seen[v]
			if ok {
				continue
			}
			list = append(list, v)
			seen[v] = empty
		}
	}
	merge(s.Strings)
	merge(values)
	return StringScalerAnchored(list, s.Anchor, s.Range)
}

func (s stringScaler) replace(rg Range) Scaler[string] {
	x := s
	x.Range = rg
	x.Strings = make([]string, len(s.Strings))
	copy(x.Strings, s.Strings)
	return x
}

// Coord pairs an horizontal and a vertical scaler into a 2D mapping. The
// two axes are independent.
type Coord[T, U ScalerConstraint] struct {
	X Scaler[T]
	Y Scaler[U]
}

func (c Coord[T, U]) Map(pt Point[T, U]) Pos {
	return NewPos(c.X.Scale(pt.X), c.Y.Scale(pt.Y))
}

func (c Coord[T, U]) Invert(p Pos) (Point[T, U], bool) {
	x, okx := c.X.Invert(p.X)
	y, oky := c.Y.Invert(p.Y)
	pt := Point[T, U]{
		X: x,
		Y: y,
	}
	return pt, okx && oky
}
