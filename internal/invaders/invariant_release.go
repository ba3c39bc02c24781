//go:build !invariants

package invaders

const strictInvariants = false
