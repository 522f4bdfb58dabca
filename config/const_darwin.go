package config

const (
	DefaultWorkdir = "/usr/local/var/com.github.gsuite-tools/sheets-records"
)
