// Package fuzztests houses Go fuzz harnesses that run arbitrary input
// through the whole sumc pipeline (lexer -> codegen -> diagnostic rendering)
// and check that nothing panics and every failure points inside the input.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
