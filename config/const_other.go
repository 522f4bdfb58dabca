//go:build !linux && !darwin

package config

const (
	DefaultWorkdir = "sheets-records"
)
