package checks_test

import (
	"testing"

	"github.com/CodMac/go-treesitter-java-checks/checks"
	"github.com/CodMac/go-treesitter-java-checks/core"
	"github.com/CodMac/go-treesitter-java-checks/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mixedSource = `package p;

import java.io.Serializable;

class A implements Serializable {
    private int foo;

    boolean same(String a, Object b) {
        return a.equals(b.getClass().getName());
    }
}
`

func TestEngine_RunsAllRulesInSourceOrder(t *testing.T) {
	findings := run(t, mixedSource)

	require.Len(t, findings, 3)
	assert.EqualValues(t, "S2057", findings[0].Rule)
	assert.Equal(t, 5, findings[0].Location.StartLine)
	assert.EqualValues(t, "S1068", findings[1].Rule)
	assert.Equal(t, 6, findings[1].Location.StartLine)
	assert.EqualValues(t, "S1872", findings[2].Rule)
	assert.Equal(t, 9, findings[2].Location.StartLine)
}

func TestEngine_Idempotent(t *testing.T) {
	engine, err := checks.NewEngine(checks.DefaultConfig(), nil)
	require.NoError(t, err)
	fc := analyze(t, mixedSource)

	first := engine.Run(fc)
	second := engine.Run(fc)
	assert.Equal(t, first, second)
}

func TestEngine_NoSemantic(t *testing.T) {
	engine, err := checks.NewEngine(checks.DefaultConfig(), nil)
	require.NoError(t, err)

	fc := analyze(t, mixedSource)
	fc.Semantic = nil
	assert.Empty(t, engine.Run(fc))

	// 每条规则自身也不依赖引擎的前置判断
	for _, c := range engine.Checks() {
		p := &checks.Pass{File: fc, Config: checks.DefaultConfig()}
		assert.NotPanics(t, func() { c.Run(p) })
	}

	assert.Empty(t, engine.Run(nil))
	assert.Empty(t, engine.Run(core.NewFileContext("Empty.java", nil)))
}

func TestEngine_SelectRules(t *testing.T) {
	engine, err := checks.NewEngine(nil, nil, "S1872")
	require.NoError(t, err)
	require.Len(t, engine.Checks(), 1)

	findings := engine.Run(analyze(t, mixedSource))
	require.Len(t, findings, 1)
	assert.EqualValues(t, "S1872", findings[0].Rule)

	_, err = checks.NewEngine(nil, nil, "S0000")
	assert.Error(t, err)
}

func TestEngine_CustomConfig(t *testing.T) {
	cfg := checks.DefaultConfig()
	cfg.UsedFieldAnnotations = core.NewNameSet("com.acme.Inject")
	cfg.GUIPrefixes = []string{"org.eclipse.swt."}

	src := `package p;

import java.io.Serializable;
import com.acme.Inject;
import org.eclipse.swt.widgets.Composite;

class A extends Composite implements Serializable {
    @Inject
    private int injected;
}
`
	engine, err := checks.NewEngine(cfg, nil)
	require.NoError(t, err)
	assert.Empty(t, engine.Run(analyze(t, src)))
}

func TestEngine_SuppressionTokenIsFixed(t *testing.T) {
	src := `package p;

import java.io.Serializable;

@SuppressWarnings("all")
class A implements Serializable {
}
`
	engine, err := checks.NewEngine(nil, nil, "S2057")
	require.NoError(t, err)

	findings := engine.Run(analyze(t, src))
	require.Len(t, findings, 1)
	assert.Equal(t, `Add a "static final long serialVersionUID" field to this class.`, findings[0].Message)
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []model.RuleKey{"S1068", "S1872", "S2057"}, checks.Keys())

	c, err := checks.Get("S2057")
	require.NoError(t, err)
	assert.Equal(t, `"Serializable" classes should have a version id`, c.Name())

	_, err = checks.Get("S404")
	assert.Error(t, err)
}
