package testcase

import "fmt"

// recordingLogger captures reported events per level so tests can assert on
// the observability contract.
type recordingLogger struct {
	debugs []string
	infos  []string
	warns  []string
	errors []string
}

func (r *recordingLogger) Debugf(format string, args ...any) {
	r.debugs = append(r.debugs, fmt.Sprintf(format, args...))
}

func (r *recordingLogger) Infof(format string, args ...any) {
	r.infos = append(r.infos, fmt.Sprintf(format, args...))
}

func (r *recordingLogger) Warnf(format string, args ...any) {
	r.warns = append(r.warns, fmt.Sprintf(format, args...))
}

func (r *recordingLogger) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}
