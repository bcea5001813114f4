package log

import "github.com/sirupsen/logrus"

// logrus 타입 별칭. 호출부가 logrus를 직접 import하지 않도록 합니다.
type (
	Level         = logrus.Level
	Fields        = logrus.Fields
	Entry         = logrus.Entry
	Logger        = logrus.Logger
	Formatter     = logrus.Formatter
	JSONFormatter = logrus.JSONFormatter
	TextFormatter = logrus.TextFormatter
)

// 심각도 순서(높음 → 낮음)로 나열된 로그 레벨입니다.
// Panic은 기록 후 panic()을, Fatal은 기록 후 os.Exit(1)을 호출합니다.
const (
	PanicLevel = logrus.PanicLevel
	FatalLevel = logrus.FatalLevel
	ErrorLevel = logrus.ErrorLevel
	WarnLevel  = logrus.WarnLevel
	InfoLevel  = logrus.InfoLevel
	DebugLevel = logrus.DebugLevel
	TraceLevel = logrus.TraceLevel
)

// AllLevels 전체 로그 레벨 목록
var AllLevels = logrus.AllLevels
