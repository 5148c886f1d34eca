package logger

import "go.uber.org/zap"

// NOOPLogger discards everything. It is the default for servers built
// without an explicit logger, e.g. in tests.
var NOOPLogger = zap.NewNop().Sugar()

// New returns a human-readable development logger for the local environment
// and a JSON production logger everywhere else.
func New(appEnv string) (*zap.SugaredLogger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if appEnv == "" || appEnv == "local" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

// Must is like New but panics if the logger cannot be built.
func Must(appEnv string) *zap.SugaredLogger {
	l, err := New(appEnv)
	if err != nil {
		panic(err)
	}
	return l
}
