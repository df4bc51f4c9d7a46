// log.go — structured logging adapters (zap).
//
// Reports never log on their own. They implement zapcore.ObjectMarshaler so
// callers can attach them with zap.Object, and LogFailure logs every report in
// an error tree.
package xgxassert

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	_ zapcore.ObjectMarshaler = (*AssertionFailedError)(nil)
	_ zapcore.ObjectMarshaler = (*MultipleFailuresError)(nil)
)

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (e *AssertionFailedError) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("id", e.id)
	enc.AddString("kind", e.Kind().String())
	if e.hasMsg {
		enc.AddString("message", e.msg)
	}
	if e.IsMismatch() {
		if err := enc.AddObject("expected", valueMarshaler(e.expected)); err != nil {
			return err
		}
		if err := enc.AddObject("actual", valueMarshaler(e.actual)); err != nil {
			return err
		}
	}
	if e.cause != nil {
		enc.AddString("cause", e.cause.Error())
	}
	if len(e.suppressed) > 0 {
		if err := enc.AddArray("suppressed", errorStrings(e.suppressed)); err != nil {
			return err
		}
	}
	if len(e.stk) > 0 {
		fr := e.stk[0]
		enc.AddString("caller", fr.Function)
	}
	return nil
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (m *MultipleFailuresError) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("id", m.id)
	enc.AddString("kind", KindMultiple.String())
	enc.AddString("heading", m.heading)
	enc.AddInt("count", len(m.failures))
	return enc.AddArray("failures", zapcore.ArrayMarshalerFunc(func(arr zapcore.ArrayEncoder) error {
		for _, f := range m.failures {
			if om, ok := f.(zapcore.ObjectMarshaler); ok {
				if err := arr.AppendObject(om); err != nil {
					return err
				}
				continue
			}
			arr.AppendString(f.Error())
		}
		return nil
	}))
}

func valueMarshaler(v Value) zapcore.ObjectMarshalerFunc {
	return func(enc zapcore.ObjectEncoder) error {
		enc.AddString("type", v.TypeName())
		enc.AddString("value", v.String())
		return nil
	}
}

func errorStrings(errs []error) zapcore.ArrayMarshalerFunc {
	return func(arr zapcore.ArrayEncoder) error {
		for _, e := range errs {
			arr.AppendString(e.Error())
		}
		return nil
	}
}

// LogFailure logs every assertion report reachable from err at error level,
// one entry per report. Errors without reports are logged once as-is. A nil
// logger or nil err is a no-op.
func LogFailure(logger *zap.Logger, err error) {
	if logger == nil || err == nil {
		return
	}
	failures := Failures(err)
	if len(failures) == 0 {
		logger.Error("assertion error", zap.Error(err))
		return
	}
	for _, f := range failures {
		logger.Error("assertion failed", zap.Object("failure", f))
	}
}
