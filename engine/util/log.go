package util

var GLOBAL_LOG_LEVEL = LogLevelWarning
var GLOBAL_LOG_CATEGORIES = LogBake | LogAtlas | LogIO | LogOpenGL | LogText

type LogLevel int

const (
	LogLevelError LogLevel = 1 << iota
	LogLevelWarning
	LogLevelDebug
	LogLevelInfo
)

type LogCategory int

const (
	LogBake LogCategory = 1 << iota
	LogAtlas
	LogOpenGL
	LogIO
	LogText
	LogSystem
)

func log(cat LogCategory, lvl LogLevel, txt string) {
	if lvl > GLOBAL_LOG_LEVEL {
		return
	}
	if GLOBAL_LOG_CATEGORIES&cat == 0 {
		return
	}
	println(txt)
}

func LogBakeInfo(txt string) {
	log(LogBake, LogLevelInfo, txt)
}

func LogBakeDebug(txt string) {
	log(LogBake, LogLevelDebug, txt)
}

func LogBakeError(txt string) {
	log(LogBake, LogLevelError, txt)
}

func LogAtlasInfo(txt string) {
	log(LogAtlas, LogLevelInfo, txt)
}

func LogAtlasDebug(txt string) {
	log(LogAtlas, LogLevelDebug, txt)
}

func LogAtlasWarning(txt string) {
	log(LogAtlas, LogLevelWarning, txt)
}

func LogIOInfo(txt string) {
	log(LogIO, LogLevelInfo, txt)
}

func LogIOError(txt string) {
	log(LogIO, LogLevelError, txt)
}

func LogTextDebug(txt string) {
	log(LogText, LogLevelDebug, txt)
}

func LogTextError(txt string) {
	log(LogText, LogLevelError, txt)
}

func LogSystemInfo(txt string) {
	log(LogSystem, LogLevelInfo, txt)
}

func LogGlInfo(txt string) {
	log(LogOpenGL, LogLevelInfo, txt)
}

func LogGlDebug(txt string) {
	log(LogOpenGL, LogLevelDebug, txt)
}

func LogGlError(txt string) {
	log(LogOpenGL, LogLevelError, txt)
}

func LogGlWarning(txt string) {
	log(LogOpenGL, LogLevelWarning, txt)
}
