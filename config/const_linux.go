package config

const (
	DefaultWorkdir = "/usr/local/var/sheets-records"
)
