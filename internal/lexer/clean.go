package lexer

// Декодирование литералов с FlagNeedsCleaning. Сырой текст токена хранит
// escape-последовательности как есть; эти функции переводят их в байты.

// CleanString снимает кавычки и декодирует escape-последовательности
// строкового литерала. Некорректный вход возвращается без изменений.
func CleanString(raw string) string {
	if len(raw) < 2 {
		return raw
	}
	content := raw[1 : len(raw)-1]
	out := make([]byte, 0, len(content))

	for i := 0; i < len(content); {
		if content[i] == '\\' && i+1 < len(content) {
			b, n := decodeEscape(content[i+1:])
			out = append(out, b)
			i += 1 + n
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return string(out)
}

// CleanChar снимает кавычки и декодирует символьный литерал в один байт.
// Пустой или некорректный литерал даёт 0.
func CleanChar(raw string) byte {
	if len(raw) < 3 {
		return 0
	}
	content := raw[1 : len(raw)-1]
	if content == "" {
		return 0
	}
	if content[0] == '\\' && len(content) >= 2 {
		b, _ := decodeEscape(content[1:])
		return b
	}
	return content[0]
}

// decodeEscape декодирует тело escape-последовательности (после '\') и
// возвращает байт и число потреблённых символов. Неизвестная
// последовательность возвращает свой первый символ как есть.
// \u и \U дают младший байт кодовой точки.
func decodeEscape(s string) (byte, int) {
	if s == "" {
		return '\\', 0
	}
	c := s[0]
	switch c {
	case 'n':
		return '\n', 1
	case 't':
		return '\t', 1
	case 'r':
		return '\r', 1
	case 'b':
		return '\b', 1
	case 'f':
		return '\f', 1
	case 'v':
		return '\v', 1
	case 'a':
		return '\a', 1
	case '0', '1', '2', '3', '4', '5', '6', '7':
		value := int(c - '0')
		n := 1
		for n < 3 && n < len(s) && s[n] >= '0' && s[n] <= '7' {
			value = value*8 + int(s[n]-'0')
			n++
		}
		return byte(value), n
	case '\\', '\'', '"', '?':
		return c, 1
	case 'x':
		value, digits := decodeHex(s[1:], 2)
		if digits == 0 {
			// нет hex-цифр: 'x' остаётся буквой
			return 'x', 1
		}
		return byte(value), 1 + digits
	case 'u':
		value, digits := decodeHex(s[1:], 4)
		if digits < 4 {
			return 'u', 1
		}
		return byte(value & 0xFF), 1 + digits
	case 'U':
		value, digits := decodeHex(s[1:], 8)
		if digits < 8 {
			return 'U', 1
		}
		return byte(value & 0xFF), 1 + digits
	default:
		return c, 1
	}
}

func decodeHex(s string, max int) (value uint32, digits int) {
	for digits < max && digits < len(s) {
		b := s[digits]
		switch {
		case b >= '0' && b <= '9':
			value = value*16 + uint32(b-'0')
		case b >= 'a' && b <= 'f':
			value = value*16 + uint32(b-'a'+10)
		case b >= 'A' && b <= 'F':
			value = value*16 + uint32(b-'A'+10)
		default:
			return value, digits
		}
		digits++
	}
	return value, digits
}
