package base

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ib-77/coerce/pkg/coerce"
)

func intCheck(v any) error {
	if _, ok := v.(int); !ok {
		return fmt.Errorf("not an int: %v", v)
	}
	return nil
}

func TestNewNominal_Defaults(t *testing.T) {
	t.Parallel()

	n := NewNominal("int")
	if n.Primitive() != "int" || n.Name() != "int" {
		t.Fatalf("expected primitive and name 'int', got: %q, %q", n.Primitive(), n.Name())
	}
	if n.HasDefault() {
		t.Fatalf("expected no default")
	}
	if n.Kind() != coerce.KindNominal {
		t.Fatalf("expected nominal kind, got: %v", n.Kind())
	}
}

func TestCallUnsafe_RunsChecks(t *testing.T) {
	t.Parallel()

	n := NewNominal("int", WithCheck(intCheck))

	out, err := n.CallUnsafe(5)
	if err != nil || out != 5 {
		t.Fatalf("expected 5, got: (%v, %v)", out, err)
	}

	if _, err = n.CallUnsafe("abc"); err == nil {
		t.Fatalf("expected check failure for string input")
	}
}

func TestCallUnsafe_AppliesDefaultToNilInput(t *testing.T) {
	t.Parallel()

	n := NewNominal("int", WithDefault(10), WithCheck(intCheck))
	out, err := n.CallUnsafe(nil)
	if err != nil || out != 10 {
		t.Fatalf("expected default 10, got: (%v, %v)", out, err)
	}
}

func TestCallSafe_FoldsFailure(t *testing.T) {
	t.Parallel()

	n := NewNominal("int", WithCheck(intCheck))

	r := n.CallSafe("abc")
	if r.IsSuccess() {
		t.Fatalf("expected failure for string input")
	}
	if r.Input() != "abc" {
		t.Fatalf("expected failure to record input 'abc', got: %v", r.Input())
	}

	r = n.CallSafe(3)
	if !r.IsSuccess() || r.Value() != 3 {
		t.Fatalf("expected success with 3, got: success=%v, val=%v", r.IsSuccess(), r.Value())
	}
}

func TestTry_ForwardsThroughCallback(t *testing.T) {
	t.Parallel()

	n := NewNominal("int", WithCheck(intCheck))

	seen := false
	r := n.Try(4, func(r coerce.Result[any]) coerce.Result[any] {
		seen = true
		return r
	})
	if !seen || !r.IsSuccess() {
		t.Fatalf("expected callback to see a success, got: seen=%v, success=%v", seen, r.IsSuccess())
	}

	r = n.Try("bad", nil)
	if r.IsSuccess() {
		t.Fatalf("expected failure without callback")
	}
}

func TestInvoke_Named(t *testing.T) {
	t.Parallel()

	n := NewNominal("int")
	res, err := n.Invoke(OpNamed, "age")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	derived, ok := res.(*Nominal)
	if !ok || derived.Name() != "age" {
		t.Fatalf("expected derived nominal named 'age', got: %T %v", res, res)
	}
	if n.Name() != "int" {
		t.Fatalf("expected original to stay unchanged, got name: %q", n.Name())
	}
	if derived.Kind() != n.Kind() {
		t.Fatalf("expected same kind on derivation")
	}
}

func TestInvoke_DefaultAndCheck(t *testing.T) {
	t.Parallel()

	n := NewNominal("int")

	res, err := n.Invoke(OpDefault, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	withDef := res.(*Nominal)
	if !withDef.HasDefault() {
		t.Fatalf("expected derived nominal to carry a default")
	}

	res, err = n.Invoke(OpCheck, Check(intCheck))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checked := res.(*Nominal)
	if _, err := checked.CallUnsafe("abc"); err == nil {
		t.Fatalf("expected derived nominal to run the added check")
	}
}

func TestInvoke_Meta(t *testing.T) {
	t.Parallel()

	n := NewNominal("int", WithMeta("doc", "an integer"))
	res, err := n.Invoke(OpMeta)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	meta, ok := res.(map[string]any)
	if !ok || meta["doc"] != "an integer" {
		t.Fatalf("expected meta map with doc entry, got: %v", res)
	}
}

func TestInvoke_UnknownOpFails(t *testing.T) {
	t.Parallel()

	n := NewNominal("int")
	_, err := n.Invoke("nope")
	var ce *coerce.CapabilityError
	if !errors.As(err, &ce) || ce.Op != "nope" {
		t.Fatalf("expected capability error for 'nope', got: %v", err)
	}
	if n.Supports("nope") {
		t.Fatalf("expected Supports to reject unknown op")
	}
}

func TestInvoke_BadArgsFail(t *testing.T) {
	t.Parallel()

	n := NewNominal("int")
	if _, err := n.Invoke(OpNamed); err == nil {
		t.Fatalf("expected error for missing argument")
	}
	if _, err := n.Invoke(OpNamed, 42); err == nil {
		t.Fatalf("expected error for wrong argument type")
	}
}

func TestAST(t *testing.T) {
	t.Parallel()

	n := NewNominal("int", WithName("age"), WithMeta("doc", "x"))

	bare := n.AST(false)
	if !bare.Equal(coerce.N("nominal", "int", "age")) {
		t.Fatalf("expected meta-free ast, got: %s", bare)
	}

	withMeta := n.AST(true)
	if len(withMeta.Args) != 3 {
		t.Fatalf("expected meta to be included, got: %s", withMeta)
	}
}
