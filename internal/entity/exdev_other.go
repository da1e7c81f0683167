//go:build !unix

package entity

func isEXDEV(error) bool { return false }
