package services

// Reporter receives graded progress output from a running service.
// Commands plug in a styled implementation; tests usually leave it nil.
type Reporter interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Successf(format string, args ...any)
}

type nopReporter struct{}

func (nopReporter) Infof(string, ...any)    {}
func (nopReporter) Warnf(string, ...any)    {}
func (nopReporter) Errorf(string, ...any)   {}
func (nopReporter) Successf(string, ...any) {}

func orNop(r Reporter) Reporter {
	if r == nil {
		return nopReporter{}
	}
	return r
}
