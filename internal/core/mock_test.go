package core_test

import (
	"testing"

	"github.com/DonaldWhyte/double"
	. "github.com/onsi/gomega"
	"pgregory.net/rapid"
)

// pair packs two ints the way generated args structs pack method arguments.
type pair struct {
	First, Second int
}

// TestCall_NoStubbing_ReturnsDefault verifies a fresh mock returns its
// default value for any argument.
func TestCall_NoStubbing_ReturnsDefault(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	mock := double.New[int](7).WithReporter(t)

	g.Expect(mock.Call(0)).To(Equal(7))
	g.Expect(mock.Call(42)).To(Equal(7))
	g.Expect(mock.Call(-1)).To(Equal(7))
}

// TestNewDefault_ReturnsZeroValue verifies NewDefault mocks return the
// return type's zero value.
func TestNewDefault_ReturnsZeroValue(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	intMock := double.NewDefault[string, int]().WithReporter(t)
	strMock := double.NewDefault[int, string]().WithReporter(t)

	g.Expect(intMock.Call("anything")).To(Equal(0))
	g.Expect(strMock.Call(1)).To(Equal(""))
}

// TestReturnValue_ReplacesDefault verifies ReturnValue swaps the fallback
// value for subsequent calls.
func TestReturnValue_ReplacesDefault(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	mock := double.New[int](1).WithReporter(t)

	g.Expect(mock.Call(0)).To(Equal(1))

	mock.ReturnValue(2)

	g.Expect(mock.Call(0)).To(Equal(2))
}

// TestReturnValues_SequenceThenDefault verifies the one-shot sequence is
// consumed in the order given and falls back to the default afterwards.
func TestReturnValues_SequenceThenDefault(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	mock := double.New[int](99).WithReporter(t)
	mock.ReturnValues(1, 2)

	g.Expect(mock.Call(0)).To(Equal(1))
	g.Expect(mock.Call(0)).To(Equal(2))
	g.Expect(mock.Call(0)).To(Equal(99))
}

// TestReturnValueFor_BeatsSequence verifies a per-argument literal claims
// its calls while other arguments keep consuming the sequence.
func TestReturnValueFor_BeatsSequence(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	mock := double.New[string](0).WithReporter(t)
	mock.ReturnValues(10, 20)
	mock.ReturnValueFor("special", 777)

	g.Expect(mock.Call("special")).To(Equal(777))
	g.Expect(mock.Call("plain")).To(Equal(10))
	g.Expect(mock.Call("special")).To(Equal(777))
	g.Expect(mock.Call("plain")).To(Equal(20))
	g.Expect(mock.Call("plain")).To(Equal(0))
}

// TestUseClosure_BeatsSequenceAndDefault verifies a default closure claims
// all calls no per-argument stubbing matches.
func TestUseClosure_BeatsSequenceAndDefault(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	mock := double.New[int](99).WithReporter(t)
	mock.ReturnValues(1, 2)
	mock.UseClosure(func(x int) int { return x * 2 })

	g.Expect(mock.Call(3)).To(Equal(6))
	g.Expect(mock.Call(10)).To(Equal(20))
}

// TestUseFn_And_UseClosure_AreMutuallyExclusive verifies the default-level
// fn and closure clear each other, last writer winning.
func TestUseFn_And_UseClosure_AreMutuallyExclusive(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	double3 := func(x int) int { return x * 3 }

	mock := double.New[int](0).WithReporter(t)
	mock.UseClosure(func(x int) int { return x + 1 })
	mock.UseFn(double3)

	g.Expect(mock.Call(5)).To(Equal(15), "UseFn should clear the closure")

	mock.UseClosure(func(x int) int { return x + 1 })

	g.Expect(mock.Call(5)).To(Equal(6), "UseClosure should clear the fn")
}

// TestPerArgumentPrecedence verifies closure-for outranks fn-for outranks
// the per-argument literal for the same key.
func TestPerArgumentPrecedence(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	mock := double.New[int](0).WithReporter(t)
	mock.ReturnValueFor(5, 100)
	mock.UseFnFor(5, func(int) int { return 200 })

	g.Expect(mock.Call(5)).To(Equal(200), "fn-for should outrank the literal")

	mock.UseClosureFor(5, func(int) int { return 300 })

	g.Expect(mock.Call(5)).To(Equal(300), "closure-for should outrank fn-for")
	g.Expect(mock.Call(6)).To(Equal(0), "other keys should fall through")
}

// TestPerArgumentStubbing_BeatsDefaultLevel verifies every per-argument
// tier outranks the default closure.
func TestPerArgumentStubbing_BeatsDefaultLevel(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	mock := double.New[int](0).WithReporter(t)
	mock.UseClosure(func(int) int { return 1 })
	mock.ReturnValueFor(7, 70)

	g.Expect(mock.Call(7)).To(Equal(70))
	g.Expect(mock.Call(8)).To(Equal(1))
}

// TestCallHistory_RecordsInOrder verifies calls are recorded in call order
// no matter which resolution path served them.
func TestCallHistory_RecordsInOrder(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	mock := double.New[pair]("").WithReporter(t)
	mock.ReturnValueFor(pair{1, 2}, "override")
	mock.UseClosureFor(pair{3, 4}, func(pair) string { return "closure" })

	mock.Call(pair{1, 2})
	mock.Call(pair{3, 4})
	mock.Call(pair{5, 6})

	g.Expect(mock.NumCalls()).To(Equal(3))
	g.Expect(mock.Calls()).To(Equal([]pair{{1, 2}, {3, 4}, {5, 6}}))
	g.Expect(mock.Called()).To(BeTrue())
}

// TestResetCalls_ClearsHistoryOnly verifies ResetCalls empties the history
// without rewinding the one-shot sequence or dropping overrides.
func TestResetCalls_ClearsHistoryOnly(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	mock := double.New[int](0).WithReporter(t)
	mock.ReturnValues(1, 2)
	mock.ReturnValueFor(9, 90)

	g.Expect(mock.Call(5)).To(Equal(1))

	mock.ResetCalls()

	g.Expect(mock.Called()).To(BeFalse())
	g.Expect(mock.NumCalls()).To(BeZero())
	g.Expect(mock.Calls()).To(BeEmpty())
	g.Expect(mock.Call(5)).To(Equal(2), "sequence should continue, not rewind")
	g.Expect(mock.Call(9)).To(Equal(90), "overrides should survive the reset")
}

// TestCalls_ReturnsDefensiveCopy verifies mutating the returned history
// slice cannot corrupt the mock's own record.
func TestCalls_ReturnsDefensiveCopy(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	mock := double.New[int](0).WithReporter(t)
	mock.Call(1)
	mock.Call(2)

	history := mock.Calls()
	history[0] = 999

	g.Expect(mock.Calls()).To(Equal([]int{1, 2}))
}

// TestCall_ReentrantStubbing verifies a stubbed closure may call back into
// the same mock without deadlocking, and both calls are recorded.
func TestCall_ReentrantStubbing(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	mock := double.New[int](1).WithReporter(t)
	mock.UseClosureFor(10, func(int) int { return mock.Call(20) + 100 })

	g.Expect(mock.Call(10)).To(Equal(101))
	g.Expect(mock.Calls()).To(Equal([]int{10, 20}))
}

// TestSequenceAndDefault_Rapid property-checks the sequence-then-default
// law for arbitrary sequences, defaults, and call counts.
func TestSequenceAndDefault_Rapid(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		defaultReturn := rapid.Int().Draw(rt, "default")
		seq := rapid.SliceOfN(rapid.Int(), 0, 20).Draw(rt, "sequence")
		numCalls := rapid.IntRange(0, 30).Draw(rt, "numCalls")

		mock := double.New[int](defaultReturn)
		mock.ReturnValues(seq...)

		for i := range numCalls {
			got := mock.Call(i)

			want := defaultReturn
			if i < len(seq) {
				want = seq[i]
			}

			if got != want {
				rt.Fatalf("call %d: got %d, want %d", i, got, want)
			}
		}

		if mock.NumCalls() != numCalls {
			rt.Fatalf("recorded %d calls, want %d", mock.NumCalls(), numCalls)
		}
	})
}
