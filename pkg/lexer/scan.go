package lexer

import "github.com/yaklabco/csift/pkg/source"

// process dispatches the current character against the current state.
// It returns actReprocess when the character was used only as lookahead
// and must be dispatched again (maximal munch), actNext otherwise.
func (l *Lexer) process() (action, error) {
	switch l.st {
	case stWhitespace:
		return l.processWhitespace()
	case stWhitespaceToEOL:
		return l.processWhitespaceToEOL()
	case stIdentifier:
		return l.processIdentifier()
	case stLineComment:
		return l.processLineComment()
	case stBlockComment:
		return l.processBlockComment()
	case stBeforeHeaderName:
		return l.processBeforeHeaderName()
	case stSysHeaderName:
		return l.processHeaderName('>')
	case stUserHeaderName:
		return l.processHeaderName('"')
	case stErrorTextToEOL:
		return l.processErrorTextToEOL()
	case stString:
		return l.processQuoted('"', source.TokStringLiteral)
	case stChar:
		return l.processQuoted('\'', source.TokCharConstant)
	case stHex:
		return l.processHex()
	case stBinary:
		return l.processBinary()
	case stOctal:
		return l.processOctal()
	case stIntegerPart:
		return l.processIntegerPart()
	case stDecimalPart:
		return l.processDecimalPart()
	}
	return actNext, nil
}

func (l *Lexer) processWhitespace() (action, error) {
	chr := l.chr
	switch chr {
	case ' ', '\t', '\r':
		// Skip.
	case '\n':
		if l.prepro {
			l.emit(source.TokPPEnd, 0, 0)
			l.prepro = false
		}
	case '\\':
		l.st = stWhitespaceToEOL
	case '#':
		l.st = stIdentifier
		l.prepro = true
		l.emit(source.TokPPBegin, 0, 0)
		l.pending = l.pending[:0]
	case '"':
		l.st = stString
		l.pending = l.pending[:0]
	case '\'':
		l.st = stChar
		l.pending = l.pending[:0]
	case '{', '}', '(', ')', '[', ']', ',', ';', '?', '@':
		l.emit(source.TokPunctuator, chr, 0)
	case '.':
		chr2 := l.reader.next()
		if chr2 >= '0' && chr2 <= '9' {
			l.pending = append(l.pending[:0], byte(chr), byte(chr2))
			l.st = stDecimalPart
		} else {
			l.emit(source.TokPunctuator, chr, 0)
			l.chr = chr2
			return actReprocess, nil
		}
	case '+':
		chr2 := l.reader.next()
		if chr2 == '+' || chr2 == '=' {
			l.emit(source.TokPunctuator, chr, chr2)
		} else {
			l.emit(source.TokPunctuator, chr, 0)
			l.chr = chr2
			return actReprocess, nil
		}
	case '-':
		chr2 := l.reader.next()
		if chr2 == '-' || chr2 == '=' || chr2 == '>' {
			l.emit(source.TokPunctuator, chr, chr2)
		} else {
			l.emit(source.TokPunctuator, chr, 0)
			l.chr = chr2
			return actReprocess, nil
		}
	case '/':
		chr2 := l.reader.next()
		switch chr2 {
		case '/':
			l.st = stLineComment
			l.pending = l.pending[:0]
		case '*':
			l.st = stBlockComment
			l.pending = l.pending[:0]
		case '=':
			l.emit(source.TokPunctuator, chr, chr2)
		default:
			l.emit(source.TokPunctuator, chr, 0)
			l.chr = chr2
			return actReprocess, nil
		}
	case '&', '|', ':':
		// && || :: or the single-character fallback.
		chr2 := l.reader.next()
		if chr2 == chr {
			l.emit(source.TokPunctuator, chr, chr2)
		} else {
			l.emit(source.TokPunctuator, chr, 0)
			l.chr = chr2
			return actReprocess, nil
		}
	case '^', '%', '*', '!', '~':
		// ^= %= *= != or the single-character fallback.
		chr2 := l.reader.next()
		if chr2 == '=' {
			l.emit(source.TokPunctuator, chr, chr2)
		} else {
			l.emit(source.TokPunctuator, chr, 0)
			l.chr = chr2
			return actReprocess, nil
		}
	case '<', '>', '=':
		// << >> == <= >= or the single-character fallback.
		chr2 := l.reader.next()
		if chr2 == chr || chr2 == '=' {
			l.emit(source.TokPunctuator, chr, chr2)
		} else {
			l.emit(source.TokPunctuator, chr, 0)
			l.chr = chr2
			return actReprocess, nil
		}
	default:
		switch {
		case isIdentStart(chr):
			l.st = stIdentifier
			l.pending = append(l.pending[:0], byte(chr))
		case chr == '0':
			// Branch on the prefix: hex, binary, octal, or decimal.
			chr2 := l.reader.next()
			switch {
			case chr2 == 'x' || chr2 == 'X':
				l.st = stHex
				l.pending = append(l.pending[:0], byte(chr), byte(chr2))
			case chr2 == 'b' || chr2 == 'B':
				l.st = stBinary
				l.pending = append(l.pending[:0], byte(chr), byte(chr2))
			case chr2 >= '0' && chr2 <= '7':
				l.st = stOctal
				l.pending = append(l.pending[:0], byte(chr), byte(chr2))
			case chr2 == '.':
				l.st = stDecimalPart
				l.pending = append(l.pending[:0], byte(chr), byte(chr2))
			default:
				l.pending = append(l.pending[:0], byte(chr))
				l.emitPending(source.TokNumericConstant)
				l.chr = chr2
				return actReprocess, nil
			}
		case chr >= '1' && chr <= '9':
			l.st = stIntegerPart
			l.pending = append(l.pending[:0], byte(chr))
		case chr < 0:
			// End of input.
		default:
			return actNext, l.errorf("unexpected char: %d %q", chr, rune(chr))
		}
	}
	return actNext, nil
}

func (l *Lexer) processWhitespaceToEOL() (action, error) {
	switch l.chr {
	case ' ', '\t', '\r':
		// Skip.
	case '\n':
		l.st = stWhitespace
	default:
		return actNext, l.errorf("unexpected char %q after '\\'", rune(l.chr))
	}
	return actNext, nil
}

func (l *Lexer) processIdentifier() (action, error) {
	if isIdentChar(l.chr) {
		l.pending = append(l.pending, byte(l.chr))
		return actNext, nil
	}

	if l.prepro {
		if key, ok := source.LookupPPKeyword(string(l.pending)); ok {
			l.emit(source.TokPPKeyword, int(key), 0)
			l.pending = l.pending[:0]
			switch key {
			case source.PPInclude:
				l.st = stBeforeHeaderName
			case source.PPError:
				l.st = stErrorTextToEOL
			default:
				l.st = stWhitespace
			}
		} else {
			l.emitPending(source.TokIdentifier)
			l.st = stWhitespace
		}
		return actReprocess, nil
	}

	if key, ok := source.LookupKeyword(string(l.pending)); ok {
		l.emit(source.TokKeyword, int(key), 0)
		l.pending = l.pending[:0]
	} else {
		l.emitPending(source.TokIdentifier)
	}
	l.st = stWhitespace
	return actReprocess, nil
}

func (l *Lexer) processLineComment() (action, error) {
	switch {
	case l.chr == '\n' || l.chr < 0:
		if l.opts.KeepComments {
			l.emitComment()
		}
		l.st = stWhitespace
	case l.opts.KeepComments:
		l.pending = append(l.pending, byte(l.chr))
	}
	return actNext, nil
}

func (l *Lexer) processBlockComment() (action, error) {
	switch {
	case l.chr == '*':
		chr2 := l.reader.next()
		if chr2 == '/' {
			if l.opts.KeepComments {
				l.emitComment()
			}
			l.st = stWhitespace
			return actNext, nil
		}
		if l.opts.KeepComments {
			l.pending = append(l.pending, byte(l.chr))
		}
		l.chr = chr2
		return actReprocess, nil
	case l.chr < 0:
		return actNext, l.errorf("unterminated comment")
	case l.opts.KeepComments:
		l.pending = append(l.pending, byte(l.chr))
	}
	return actNext, nil
}

func (l *Lexer) processBeforeHeaderName() (action, error) {
	switch {
	case l.chr == ' ' || l.chr == '\t':
		// Skip whitespace before the header name.
	case l.chr == '<':
		l.st = stSysHeaderName
		l.pending = l.pending[:0]
	case l.chr == '"':
		l.st = stUserHeaderName
		l.pending = l.pending[:0]
	case isIdentStart(l.chr):
		// #include SOME_MACRO
		l.st = stIdentifier
		l.pending = append(l.pending[:0], byte(l.chr))
	default:
		return actNext, l.errorf("unexpected char %q after #include", rune(l.chr))
	}
	return actNext, nil
}

func (l *Lexer) processHeaderName(closing int) (action, error) {
	switch {
	case l.chr == closing:
		l.emitPending(source.TokHeaderName)
		l.st = stWhitespace
	case l.chr == '\\':
		if err := l.pushEscaped(); err != nil {
			return actNext, err
		}
	case l.chr < 0:
		return actNext, l.errorf("unexpected end of file in header name")
	default:
		l.pending = append(l.pending, byte(l.chr))
	}
	return actNext, nil
}

func (l *Lexer) processErrorTextToEOL() (action, error) {
	switch {
	case l.chr == '\n' || l.chr < 0:
		l.pending = append(l.pending[:0], trimSpace(l.pending)...)
		l.emitPending(source.TokStringLiteral)
		if l.chr == '\n' {
			l.emit(source.TokPPEnd, 0, 0)
			l.prepro = false
		}
		l.st = stWhitespace
	default:
		l.pending = append(l.pending, byte(l.chr))
	}
	return actNext, nil
}

func (l *Lexer) processQuoted(closing int, kind source.TokenKind) (action, error) {
	switch {
	case l.chr == closing:
		l.emitPending(kind)
		l.st = stWhitespace
	case l.chr == '\\':
		if err := l.pushEscaped(); err != nil {
			return actNext, err
		}
	case l.chr < 0:
		if kind == source.TokCharConstant {
			return actNext, l.errorf("unterminated character constant")
		}
		return actNext, l.errorf("unterminated string")
	default:
		l.pending = append(l.pending, byte(l.chr))
	}
	return actNext, nil
}

func (l *Lexer) processHex() (action, error) {
	if isHexDigit(l.chr) {
		l.pending = append(l.pending, byte(l.chr))
		return actNext, nil
	}
	l.emitPending(source.TokNumericConstant)
	l.st = stWhitespace
	return actReprocess, nil
}

func (l *Lexer) processBinary() (action, error) {
	if l.chr == '0' || l.chr == '1' {
		l.pending = append(l.pending, byte(l.chr))
		return actNext, nil
	}
	l.emitPending(source.TokNumericConstant)
	l.st = stWhitespace
	return actReprocess, nil
}

func (l *Lexer) processOctal() (action, error) {
	switch {
	case l.chr >= '0' && l.chr <= '7':
		l.pending = append(l.pending, byte(l.chr))
	case l.chr == '8' || l.chr == '9':
		return actNext, l.errorf("invalid digit %q in octal constant", rune(l.chr))
	default:
		l.emitPending(source.TokNumericConstant)
		l.st = stWhitespace
		return actReprocess, nil
	}
	return actNext, nil
}

func (l *Lexer) processIntegerPart() (action, error) {
	switch {
	case l.chr >= '0' && l.chr <= '9':
		l.pending = append(l.pending, byte(l.chr))
	case l.chr == '.':
		l.st = stDecimalPart
		l.pending = append(l.pending, byte(l.chr))
	default:
		l.emitPending(source.TokNumericConstant)
		l.st = stWhitespace
		return actReprocess, nil
	}
	return actNext, nil
}

func (l *Lexer) processDecimalPart() (action, error) {
	switch {
	case l.chr >= '0' && l.chr <= '9':
		l.pending = append(l.pending, byte(l.chr))
	case l.chr == 'f':
		// Single-precision suffix terminates the literal.
		l.pending = append(l.pending, byte(l.chr))
		l.emitPending(source.TokNumericConstant)
		l.st = stWhitespace
	default:
		l.emitPending(source.TokNumericConstant)
		l.st = stWhitespace
		return actReprocess, nil
	}
	return actNext, nil
}

// pushEscaped consumes the character after a backslash. Only \n, \r,
// and \t translate; any other escaped character is taken literally.
func (l *Lexer) pushEscaped() error {
	switch chr := l.reader.next(); chr {
	case 'n':
		l.pending = append(l.pending, '\n')
	case 'r':
		l.pending = append(l.pending, '\r')
	case 't':
		l.pending = append(l.pending, '\t')
	case -1:
		return l.errorf("unexpected end of file after '\\'")
	default:
		l.pending = append(l.pending, byte(chr))
	}
	return nil
}

func isIdentStart(chr int) bool {
	return (chr >= 'a' && chr <= 'z') ||
		(chr >= 'A' && chr <= 'Z') ||
		chr == '_'
}

func isIdentChar(chr int) bool {
	return isIdentStart(chr) || (chr >= '0' && chr <= '9')
}

func isHexDigit(chr int) bool {
	return (chr >= '0' && chr <= '9') ||
		(chr >= 'a' && chr <= 'f') ||
		(chr >= 'A' && chr <= 'F')
}
