//go:build invariants

package invaders

const strictInvariants = true
