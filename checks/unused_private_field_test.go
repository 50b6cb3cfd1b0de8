package checks_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/CodMac/go-treesitter-java-checks/checks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnusedPrivateField(t *testing.T) {
	src := `package p;

import java.io.Serializable;

class A implements Serializable {
    private static final long serialVersionUID = 1L;
    private int foo;
    private int bar = 1;
    public int visible;

    int read() {
        return bar;
    }

    class Nested {
        private String unusedInNested;
        private String usedByOuter;
    }

    String touch(Nested n) {
        return n.usedByOuter;
    }
}
`
	findings := run(t, src, "S1068")

	assert.Equal(t, []finding{
		{7, 5, `Remove this unused "foo" private field.`},
		{16, 9, `Remove this unused "unusedInNested" private field.`},
	}, simplify(findings))
	for _, f := range findings {
		assert.EqualValues(t, "S1068", f.Rule)
		assert.Equal(t, "Test.java", f.Location.FilePath)
	}
}

func TestUnusedPrivateField_Writes(t *testing.T) {
	// 仅被赋值的字段也算作被使用
	src := `package p;

class A {
    private int counter;
    private int shadowed;

    void inc(int shadowed) {
        this.counter = shadowed;
    }
}
`
	assert.Equal(t, []finding{
		{5, 5, `Remove this unused "shadowed" private field.`},
	}, simplify(run(t, src, "S1068")))
}

func TestUnusedPrivateField_Lombok(t *testing.T) {
	src := `package p;

import lombok.Data;
import lombok.Getter;

@Data
class A {
    private int foo;
}

class B {
    @Getter
    private int bar;
    private int baz;
}

@lombok.Setter
class C {
    private int qux;
}

class D {
    @javax.enterprise.inject.Produces
    private Object produced;
}
`
	assert.Equal(t, []finding{
		{14, 5, `Remove this unused "baz" private field.`},
	}, simplify(run(t, src, "S1068")))
}

func TestUnusedPrivateField_ProducesImported(t *testing.T) {
	src := `package p;

import javax.enterprise.inject.Produces;

class A {
    @Produces
    private Object x;
    private Object y;
}
`
	assert.Equal(t, []finding{
		{8, 5, `Remove this unused "y" private field.`},
	}, simplify(run(t, src, "S1068")))
}

func TestUnusedPrivateField_UnresolvedAnnotation(t *testing.T) {
	newEngine := func(t *testing.T) (*checks.Engine, *bytes.Buffer) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
		engine, err := checks.NewEngine(checks.DefaultConfig(), logger, "S1068")
		require.NoError(t, err)
		return engine, &buf
	}

	t.Run("Verify warning is logged for unknown annotations", func(t *testing.T) {
		src := `package p;

@NoSuchAnnotation
class A {
    @AlsoMissing
    private int x;
}
`
		engine, buf := newEngine(t)
		assert.Equal(t, []finding{
			{5, 5, `Remove this unused "x" private field.`},
		}, simplify(engine.Run(analyze(t, src))))

		log := buf.String()
		assert.Contains(t, log, "annotation type could not be resolved")
		assert.Contains(t, log, "annotation=p.NoSuchAnnotation")
		assert.Contains(t, log, "annotation=p.AlsoMissing")
	})

	t.Run("Verify no warning for resolved annotations", func(t *testing.T) {
		src := `package p;

import lombok.Getter;

class A {
    @Getter
    private int x;
    @Deprecated
    private int y;
}
`
		engine, buf := newEngine(t)
		assert.Len(t, engine.Run(analyze(t, src)), 1)
		assert.Empty(t, buf.String())
	})
}

func TestUnusedPrivateField_MultipleDeclarators(t *testing.T) {
	src := `package p;

class A {
    private int a, b;

    int get() {
        return b;
    }
}
`
	assert.Equal(t, []finding{
		{4, 5, `Remove this unused "a" private field.`},
	}, simplify(run(t, src, "S1068")))
}
