package ox

// StructDef is a struct declaration: its own field names in declaration
// order, at most one parent, and the static/instance method tables filled
// in as method declarations are evaluated.
type StructDef struct {
	Name    string
	Fields  []string
	Parent  *StructDef
	Statics map[string]*Function
	Methods map[string]*Function
}

func newStructDef(name string, fields []string, parent *StructDef) *StructDef {
	return &StructDef{
		Name:    name,
		Fields:  fields,
		Parent:  parent,
		Statics: make(map[string]*Function),
		Methods: make(map[string]*Function),
	}
}

// AllFields returns the full constructor field list: parent fields first
// (recursively, in the parent's own declared order), then this struct's own.
func (d *StructDef) AllFields() []string {
	if d.Parent == nil {
		return d.Fields
	}
	parent := d.Parent.AllFields()
	all := make([]string, 0, len(parent)+len(d.Fields))
	all = append(all, parent...)
	all = append(all, d.Fields...)
	return all
}

// Method resolves an instance method through the inheritance chain,
// child tables first.
func (d *StructDef) Method(name string) (*Function, bool) {
	for def := d; def != nil; def = def.Parent {
		if fn, ok := def.Methods[name]; ok {
			return fn, true
		}
	}
	return nil, false
}

// Static resolves a static method through the inheritance chain.
func (d *StructDef) Static(name string) (*Function, bool) {
	for def := d; def != nil; def = def.Parent {
		if fn, ok := def.Statics[name]; ok {
			return fn, true
		}
	}
	return nil, false
}

// Instance pairs a struct definition with its field values. Field values
// live only on the instance; method resolution goes through the definition.
type Instance struct {
	Def    *StructDef
	Fields map[string]Value
}
