package checks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const useInstanceof = `Use an "instanceof" comparison instead.`

func TestClassComparedByName(t *testing.T) {
	src := `package p;

class A {
    boolean m(String a, Object b) {
        return a.equals(b.getClass().getName());
    }

    boolean n(Object b) {
        return b.getClass().getSimpleName().equals("Foo");
    }

    boolean o(Object b, Object c) {
        return b.equals(c.getClass().getName());
    }

    boolean q(Object b) {
        return "x".equals(format(b.getClass().getName()));
    }

    boolean r(Object b) {
        return A.class.getName().equals(b.getClass().getName());
    }

    String format(String s) { return s; }
}
`
	findings := run(t, src, "S1872")

	assert.Equal(t, []finding{
		{5, 25, useInstanceof},
		{9, 16, useInstanceof},
		{21, 16, useInstanceof},
		{21, 41, useInstanceof},
	}, simplify(findings))
}

func TestClassComparedByName_UserDefinedGetName(t *testing.T) {
	src := `package p;

class Named {
    String getName() { return "n"; }

    boolean same(Named other) {
        return getName().equals(other.getName());
    }
}
`
	assert.Empty(t, run(t, src, "S1872"))
}
