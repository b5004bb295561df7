package utils

import "github.com/juju/loggo"

var logger = loggo.GetLogger("notes.utils")

// ConfigureLogging applies a loggo specification such as
// "<root>=INFO;notes.handler=DEBUG".
func ConfigureLogging(spec string) error {
	if spec == "" {
		return nil
	}
	return loggo.ConfigureLoggers(spec)
}
