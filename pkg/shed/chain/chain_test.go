package chain

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/shed/pkg/shed"
)

func TestChain_SuccessPipeline(t *testing.T) {
	got := Finally(
		Map(
			ThenTry(
				FromValue(" 21 "),
				func(s string) (int, error) { return strconv.Atoi(strings.TrimSpace(s)) },
			),
			func(n int) int { return n * 2 },
		),
		func(n int) string { return strconv.Itoa(n) },
		func(err error) string { return "invalid" },
	)

	assert.Equal(t, "42", got)
}

func TestChain_FailureShortCircuits(t *testing.T) {
	called := false

	c := ThenTry(
		FromValue("2!"),
		func(s string) (int, error) { return strconv.Atoi(s) },
	)
	c = Map(c, func(n int) int {
		called = true
		return n * 2
	})

	out := c.Result()
	assert.True(t, out.IsErr())
	assert.ErrorIs(t, out.UnwrapErr(), strconv.ErrSyntax)
	assert.False(t, called, "map must not run after a failure")
}

func TestChain_StartFromResult(t *testing.T) {
	boom := errors.New("boom")

	out := Start(shed.Err[int](boom)).Result()
	assert.True(t, out.IsErr())
	assert.Equal(t, boom, out.UnwrapErr())

	out = Start(shed.Ok[error](5)).Result()
	assert.Equal(t, 5, out.Unwrap())
}

func TestChain_Then(t *testing.T) {
	half := func(n int) shed.Result[int, error] {
		if n%2 != 0 {
			return shed.Err[int](errors.New("odd"))
		}
		return shed.Ok[error](n / 2)
	}

	out := Then(FromValue(84), half).Result()
	assert.Equal(t, shed.Ok[error](42), out)

	out = Then(FromValue(5), half).Result()
	assert.True(t, out.IsErr())
}

func TestChain_EnsureAndEnsureErr(t *testing.T) {
	var seen []int
	var failures []error

	FromValue(4).
		Ensure(func(n int) { seen = append(seen, n) }).
		EnsureErr(func(err error) { failures = append(failures, err) })

	assert.Equal(t, []int{4}, seen)
	assert.Empty(t, failures)

	boom := errors.New("boom")
	Start(shed.Err[int](boom)).
		Ensure(func(n int) { seen = append(seen, n) }).
		EnsureErr(func(err error) { failures = append(failures, err) })

	assert.Equal(t, []int{4}, seen)
	assert.Equal(t, []error{boom}, failures)
}

func TestChain_Recover(t *testing.T) {
	boom := errors.New("boom")

	out := Start(shed.Err[int](boom)).
		Recover(func(err error) shed.Result[int, error] { return shed.Ok[error](0) }).
		Result()
	assert.Equal(t, shed.Ok[error](0), out)

	out = FromValue(9).
		Recover(func(err error) shed.Result[int, error] { return shed.Ok[error](0) }).
		Result()
	assert.Equal(t, 9, out.Unwrap())
}

func TestChain_FinallyOnFailure(t *testing.T) {
	got := Finally(
		Start(shed.Err[int](errors.New("down"))),
		func(n int) string { return "ok" },
		func(err error) string { return "err: " + err.Error() },
	)
	assert.Equal(t, "err: down", got)
}
