package rop

import "time"

// Condition decides when a repeated recovery gives up. Met is called once
// per failed attempt with the latest result.
//
// Conditions may keep state. An instance belongs to one recovery loop and
// is not safe for concurrent use.
type Condition[T any] interface {
	Met(current Result[T]) bool
}

type ConditionFunc[T any] func(current Result[T]) bool

func (f ConditionFunc[T]) Met(current Result[T]) bool {
	return f(current)
}

// Indefinitely is never met: recovery repeats until it succeeds.
func Indefinitely[T any]() Condition[T] {
	return ConditionFunc[T](func(Result[T]) bool { return false })
}

// AtMostCondition counts calls to Met.
type AtMostCondition[T any] struct {
	maxTimes int
	times    int
}

// AtMost is met on the call after the maxTimes-th one.
func AtMost[T any](maxTimes int) *AtMostCondition[T] {
	return &AtMostCondition[T]{maxTimes: maxTimes}
}

func (c *AtMostCondition[T]) Met(Result[T]) bool {
	c.times++
	return c.times > c.maxTimes
}

// Times returns how often Met has been called.
func (c *AtMostCondition[T]) Times() int {
	return c.times
}

// DeadlineCondition is met once the wall clock passes a fixed deadline.
type DeadlineCondition[T any] struct {
	deadline time.Time
}

// ForDuration starts the clock now. There is no delay between attempts, so
// a failing recovery spins for the whole duration.
func ForDuration[T any](d time.Duration) DeadlineCondition[T] {
	return DeadlineCondition[T]{deadline: time.Now().Add(d)}
}

func (c DeadlineCondition[T]) Met(Result[T]) bool {
	return time.Now().After(c.deadline)
}

func (c DeadlineCondition[T]) Deadline() time.Time {
	return c.deadline
}
