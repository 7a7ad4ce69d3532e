package ox

import "testing"

func TestStructConstructAndFieldAccess(t *testing.T) {
	val := execSource(t, `
struct Point { x, y }
p = Point(3, 4)
p.x + p.y
`)
	wantNumber(t, val, 7)
}

func TestStructFieldAssignment(t *testing.T) {
	val := execSource(t, `
struct Point { x, y }
p = Point(1, 2)
p.x = 10
p.y += 5
p.x + p.y
`)
	wantNumber(t, val, 17)
}

func TestStructConstructorArity(t *testing.T) {
	err := execErr(t, `
struct Point { x, y }
Point(1)
`)
	if !IsKind(err, ArityError) {
		t.Fatalf("expected ArityError, got %v", err)
	}
}

func TestStructInheritanceFieldOrder(t *testing.T) {
	val := execSource(t, `
struct Point { x, y }
struct RelativePoint inherits Point { cx, cy }
rp = RelativePoint(1, 2, 3, 4)
[rp.x, rp.y, rp.cx, rp.cy]
`)
	if val.String() != "[1, 2, 3, 4]" {
		t.Fatalf("unexpected fields: %s", val.String())
	}
}

func TestInstanceMethod(t *testing.T) {
	val := execSource(t, `
struct Point { x, y }
func Point:translate(self, dx, dy) {
	self.x += dx
	self.y += dy
}
p = Point(1, 1)
p:translate(2, 3)
[p.x, p.y]
`)
	if val.String() != "[3, 4]" {
		t.Fatalf("unexpected result: %s", val.String())
	}
}

func TestInstanceMethodViaDot(t *testing.T) {
	// Dot access on an instance resolves fields first, then methods,
	// binding the receiver just like colon access.
	val := execSource(t, `
struct Point { x, y }
func Point:norm(self) {
	return self.x * self.x + self.y * self.y
}
p = Point(3, 4)
f = p.norm
f()
`)
	wantNumber(t, val, 25)
}

func TestStaticMethod(t *testing.T) {
	val := execSource(t, `
struct Point { x, y }
func Point.origin() {
	return Point(0, 0)
}
o = Point.origin()
o.x
`)
	wantNumber(t, val, 0)
}

func TestInheritedMethodLookup(t *testing.T) {
	val := execSource(t, `
struct Shape { name }
func Shape:describe(self) {
	return self.name
}
struct Circle inherits Shape { radius }
c = Circle("circle", 2)
c:describe()
`)
	if val.String() != "circle" {
		t.Fatalf("unexpected result: %s", val.String())
	}
}

func TestMethodOverride(t *testing.T) {
	val := execSource(t, `
struct Shape { name }
func Shape:area(self) {
	return 0
}
struct Square inherits Shape { side }
func Square:area(self) {
	return self.side * self.side
}
s = Square("square", 3)
s:area()
`)
	wantNumber(t, val, 9)
}

func TestInheritedStaticLookup(t *testing.T) {
	val := execSource(t, `
struct Shape { name }
func Shape.kind() {
	return "shape"
}
struct Circle inherits Shape { radius }
Circle.kind()
`)
	if val.String() != "shape" {
		t.Fatalf("unexpected result: %s", val.String())
	}
}

func TestStructErrors(t *testing.T) {
	cases := []struct {
		source string
		kind   ErrorKind
	}{
		{`struct Point { x }
p = Point(1)
p.z`, NameError},
		{`struct Point { x }
p = Point(1)
p.z = 2`, NameError},
		{`struct Point { x }
p = Point(1)
p:fly()`, NameError},
		{`struct Point { x }
Point.missing()`, NameError},
		{`struct Child inherits Missing { x }`, NameError},
		{`x = 1
struct Child inherits x { y }`, TypeError},
		{`func Missing:touch(self) {}`, NameError},
		{`x = 1
func x.touch() {}`, TypeError},
		{`5:touch()`, TypeError},
		{`"s".length`, TypeError},
	}
	for _, tc := range cases {
		err := execErr(t, tc.source)
		if !IsKind(err, tc.kind) {
			t.Fatalf("source %q: expected %s, got %v", tc.source, tc.kind, err)
		}
	}
}

func TestInstanceIdentityEquality(t *testing.T) {
	val := execSource(t, `
struct Point { x }
a = Point(1)
b = Point(1)
c = a
[a == b, a == c]
`)
	if val.String() != "[false, true]" {
		t.Fatalf("unexpected result: %s", val.String())
	}
}

func TestMethodCallRebindsThroughChain(t *testing.T) {
	val := execSource(t, `
struct Counter { n }
func Counter:bump(self) {
	self.n += 1
	return self.n
}
c = Counter(0)
c:bump()
c:bump()
`)
	wantNumber(t, val, 2)
}
