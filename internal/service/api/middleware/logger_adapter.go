package middleware

import (
	"io"

	applog "github.com/FABAINT/open-lovable/pkg/log"
	"github.com/labstack/gommon/log"
)

// echoComponent Echo 내부에서 발생한 로그의 component 필드 값
const echoComponent = "api.echo"

// Logger Echo의 Logger 인터페이스(github.com/labstack/gommon/log 기반)를 애플리케이션 로거에 연결하는 어댑터입니다.
//
// Echo 내부 로그(서버 시작 실패, TLS 오류 등)에도 component 필드가 붙어
// 애플리케이션 로그와 같은 형식으로 기록됩니다.
type Logger struct {
	*applog.Logger
}

func (l Logger) entry() *applog.Entry {
	return l.Logger.WithField("component", echoComponent)
}

// Output 현재 출력 Writer를 반환합니다.
func (l Logger) Output() io.Writer {
	return l.Logger.Out
}

func (l Logger) SetOutput(w io.Writer) {
	l.Logger.SetOutput(w)
}

// Prefix Echo의 Prefix 기능은 사용하지 않습니다.
func (l Logger) Prefix() string {
	return ""
}

func (l Logger) SetPrefix(string) {}

// SetHeader Echo의 Header 기능은 사용하지 않습니다.
func (l Logger) SetHeader(string) {}

// Level logrus 레벨을 gommon 레벨로 변환합니다. 대응하는 레벨이 없으면 OFF를 반환합니다.
func (l Logger) Level() log.Lvl {
	switch l.Logger.GetLevel() {
	case applog.TraceLevel, applog.DebugLevel:
		return log.DEBUG
	case applog.InfoLevel:
		return log.INFO
	case applog.WarnLevel:
		return log.WARN
	case applog.ErrorLevel:
		return log.ERROR
	}
	return log.OFF
}

// SetLevel gommon 레벨을 logrus 레벨로 변환하여 설정합니다. OFF는 무시합니다.
func (l Logger) SetLevel(lvl log.Lvl) {
	switch lvl {
	case log.DEBUG:
		l.Logger.SetLevel(applog.DebugLevel)
	case log.INFO:
		l.Logger.SetLevel(applog.InfoLevel)
	case log.WARN:
		l.Logger.SetLevel(applog.WarnLevel)
	case log.ERROR:
		l.Logger.SetLevel(applog.ErrorLevel)
	}
}

func (l Logger) Print(i ...interface{}) {
	l.entry().Print(i...)
}

func (l Logger) Printf(format string, args ...interface{}) {
	l.entry().Printf(format, args...)
}

func (l Logger) Printj(j log.JSON) {
	l.entry().WithFields(applog.Fields(j)).Print()
}

func (l Logger) Debug(i ...interface{}) {
	l.entry().Debug(i...)
}

func (l Logger) Debugf(format string, args ...interface{}) {
	l.entry().Debugf(format, args...)
}

func (l Logger) Debugj(j log.JSON) {
	l.entry().WithFields(applog.Fields(j)).Debug()
}

func (l Logger) Info(i ...interface{}) {
	l.entry().Info(i...)
}

func (l Logger) Infof(format string, args ...interface{}) {
	l.entry().Infof(format, args...)
}

func (l Logger) Infoj(j log.JSON) {
	l.entry().WithFields(applog.Fields(j)).Info()
}

func (l Logger) Warn(i ...interface{}) {
	l.entry().Warn(i...)
}

func (l Logger) Warnf(format string, args ...interface{}) {
	l.entry().Warnf(format, args...)
}

func (l Logger) Warnj(j log.JSON) {
	l.entry().WithFields(applog.Fields(j)).Warn()
}

func (l Logger) Error(i ...interface{}) {
	l.entry().Error(i...)
}

func (l Logger) Errorf(format string, args ...interface{}) {
	l.entry().Errorf(format, args...)
}

func (l Logger) Errorj(j log.JSON) {
	l.entry().WithFields(applog.Fields(j)).Error()
}

func (l Logger) Fatal(i ...interface{}) {
	l.entry().Fatal(i...)
}

func (l Logger) Fatalf(format string, args ...interface{}) {
	l.entry().Fatalf(format, args...)
}

func (l Logger) Fatalj(j log.JSON) {
	l.entry().WithFields(applog.Fields(j)).Fatal()
}

func (l Logger) Panic(i ...interface{}) {
	l.entry().Panic(i...)
}

func (l Logger) Panicf(format string, args ...interface{}) {
	l.entry().Panicf(format, args...)
}

func (l Logger) Panicj(j log.JSON) {
	l.entry().WithFields(applog.Fields(j)).Panic()
}
