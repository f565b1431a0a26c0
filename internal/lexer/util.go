package lexer

func isDec(b byte) bool { return b >= '0' && b <= '9' }

// пробел, перевод строки, табуляция; '\r' сюда не входит
func isSpace(b byte) bool { return b == ' ' || b == '\n' || b == '\t' }
