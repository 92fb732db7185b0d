package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0
	// Лексические
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003
	LexTokenTooLong       Code = 1004
	LexBadAtom            Code = 1005

	// Парсерные
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnclosedDelimiter  Code = 2002
	SynExpectExpression   Code = 2003
	SynMissingEnd         Code = 2004
	SynCommentInExpr      Code = 2005
	SynExpectKeywordValue Code = 2006
	SynKeywordNotLast     Code = 2007
	SynTooDeep            Code = 2008

	// I/O
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002

	// Проект и конфигурация
	ProjInfo          Code = 5000
	ProjConfigInvalid Code = 5001

	// Наблюдаемость
	ObsInfo    Code = 6000
	ObsTimings Code = 6001

	// Форматтер
	FmtInfo             Code = 7000
	FmtDeprecatedRename Code = 7001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:           "Unknown error",
		LexInfo:               "Lexical information",
		LexUnknownChar:        "Unknown character",
		LexUnterminatedString: "Unterminated string",
		LexBadNumber:          "Bad number",
		LexTokenTooLong:       "Token too long",
		LexBadAtom:            "Malformed atom",
		SynInfo:               "Syntax information",
		SynUnexpectedToken:    "Unexpected token",
		SynUnclosedDelimiter:  "Unclosed delimiter",
		SynExpectExpression:   "Expected expression",
		SynMissingEnd:         "Missing 'end' for 'do' block",
		SynCommentInExpr:      "Comment inside an expression",
		SynExpectKeywordValue: "Expected value after keyword",
		SynKeywordNotLast:     "Keyword list must be the last argument",
		SynTooDeep:            "Expression nesting too deep",
		IOLoadFileError:       "I/O load file error",
		IOWriteFileError:      "I/O write file error",
		ProjInfo:              "Project information",
		ProjConfigInvalid:     "Invalid configuration",
		ObsInfo:               "Observability information",
		ObsTimings:            "Pipeline timings",
		FmtInfo:               "Formatter information",
		FmtDeprecatedRename:   "Deprecated call rewritten",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	case ic >= 7000 && ic < 8000:
		return fmt.Sprintf("FMT%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
