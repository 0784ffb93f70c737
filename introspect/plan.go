package introspect

import (
	"reflect"
	"sync"
)

// plan is the precomputed walk of one struct type. Plans are immutable
// once built.
type plan struct {
	typ    reflect.Type
	fields []Field
	levels []Level
	byName map[string]int // first field of each name in walk order
}

func buildPlan(t reflect.Type) (*plan, error) {
	levels, err := Levels(t)
	if err != nil {
		return nil, err
	}
	fields, err := Fields(t)
	if err != nil {
		return nil, err
	}

	p := &plan{
		typ:    levels[0].Type,
		fields: fields,
		levels: levels,
		byName: make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		if _, ok := p.byName[f.Name]; !ok {
			p.byName[f.Name] = i
		}
	}
	return p, nil
}

// lookup returns the first field called name, or the not-found sentinel.
func (p *plan) lookup(name string) (Field, bool) {
	if i, ok := p.byName[name]; ok {
		return p.fields[i], true
	}
	return Field{}, false
}

// level returns the ancestor level of type t, if any.
func (p *plan) level(t reflect.Type) (Level, bool) {
	for _, lv := range p.levels {
		if lv.Type == t {
			return lv, true
		}
	}
	return Level{}, false
}

// planCache holds plans per struct type.
type planCache struct {
	enabled bool
	plans   sync.Map // map[reflect.Type]*plan
}

// get returns the plan of t and whether this call built it.
func (c *planCache) get(t reflect.Type) (*plan, bool, error) {
	if !c.enabled {
		p, err := buildPlan(t)
		return p, err == nil, err
	}
	if p, ok := c.plans.Load(t); ok {
		return p.(*plan), false, nil
	}
	p, err := buildPlan(t)
	if err != nil {
		return nil, false, err
	}
	actual, loaded := c.plans.LoadOrStore(t, p)
	return actual.(*plan), !loaded, nil
}
