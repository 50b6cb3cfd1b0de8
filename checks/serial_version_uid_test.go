package checks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const addUID = `Add a "static final long serialVersionUID" field to this class.`

func TestSerialVersionUid(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []finding
	}{
		{
			name: "missing field",
			src: `package p;

import java.io.Serializable;

class A implements Serializable {
    private int x;
}
`,
			want: []finding{{5, 1, addUID}},
		},
		{
			name: "correct field",
			src: `package p;

import java.io.Serializable;

class A implements Serializable {
    private static final long serialVersionUID = 42L;
}
`,
			want: []finding{},
		},
		{
			name: "missing static final",
			src: `package p;

import java.io.Serializable;

class A implements Serializable {
    private long serialVersionUID = 1L;
}
`,
			want: []finding{{6, 5, `Make this "serialVersionUID" field "static final".`}},
		},
		{
			name: "wrong type",
			src: `package p;

import java.io.Serializable;

class A implements Serializable {
    static final int serialVersionUID = 1;
}
`,
			want: []finding{{6, 5, `Make this "serialVersionUID" field "long".`}},
		},
		{
			name: "boxed type and missing static",
			src: `package p;

import java.io.Serializable;

class A implements Serializable {
    final Long serialVersionUID = 1L;
}
`,
			want: []finding{{6, 5, `Make this "serialVersionUID" field "static long".`}},
		},
		{
			name: "inherited serializable",
			src: `package p;

import java.io.Serializable;

class A implements Serializable {
    private static final long serialVersionUID = 1L;
}

class B extends A {
}
`,
			want: []finding{{9, 1, addUID}},
		},
		{
			name: "serializable through jdk type",
			src: `package p;

import java.util.ArrayList;

class L extends ArrayList<String> {
}
`,
			want: []finding{{5, 1, addUID}},
		},
		{
			name: "not serializable",
			src: `package p;

class A {
}
`,
			want: []finding{},
		},
		{
			name: "non literal suppression constant",
			src: `package p;

import java.io.Serializable;

@SuppressWarnings(A.TOKEN)
class A implements Serializable {
    static final String TOKEN = "serial";
}
`,
			want: []finding{{5, 1, addUID}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, simplify(run(t, tc.src, "S2057")))
		})
	}
}

func TestSerialVersionUid_Exclusions(t *testing.T) {
	cases := map[string]string{
		"abstract class": `package p;

import java.io.Serializable;

abstract class A implements Serializable {
}
`,
		"throwable": `package p;

class MyException extends Exception {
}

class MyError extends RuntimeException {
}
`,
		"gui class": `package p;

import javax.swing.JFrame;

class Window extends JFrame {
}
`,
		"inner class of gui class": `package p;

import java.io.Serializable;
import javax.swing.JPanel;

class Panel extends JPanel {
    class Model implements Serializable {
    }

    static class Deeper {
        class Leaf implements Serializable {
        }
    }
}
`,
		"fully qualified gui supertype": `package p;

class Canvas extends java.awt.Canvas {
}
`,
		"suppressed": `package p;

import java.io.Serializable;

@SuppressWarnings("serial")
class A implements Serializable {
}
`,
		"suppressed by array": `package p;

import java.io.Serializable;

@SuppressWarnings({"unchecked", "serial"})
class A implements Serializable {
}
`,
		"suppressed by named value": `package p;

import java.io.Serializable;

@SuppressWarnings(value = "serial")
class A implements Serializable {
}
`,
		"enum interface record and anonymous": `package p;

import java.io.Serializable;

enum Color implements Serializable {
    RED
}

interface Marker extends Serializable {
}

record Point(int x) implements Serializable {
}

class Holder {
    Object o = new Serializable() {
    };
}
`,
	}

	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Empty(t, run(t, src, "S2057"))
		})
	}
}
