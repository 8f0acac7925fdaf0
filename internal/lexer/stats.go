package lexer

import (
	"fmt"
	"strings"
	"time"
)

// Stats накапливает счётчики токенизации одного лексера.
type Stats struct {
	TokenCount      uint64
	IdentifierCount uint64
	KeywordCount    uint64
	LiteralCount    uint64
	CommentCount    uint64
	LineCount       uint64
	CharacterCount  uint64
	LexingTime      time.Duration
}

// AvgTokenLength возвращает среднюю длину токена в байтах.
func (s Stats) AvgTokenLength() float64 {
	if s.TokenCount == 0 {
		return 0
	}
	return float64(s.CharacterCount) / float64(s.TokenCount)
}

// Merge прибавляет счётчики другого лексера (для агрегации по файлам).
func (s *Stats) Merge(other Stats) {
	s.TokenCount += other.TokenCount
	s.IdentifierCount += other.IdentifierCount
	s.KeywordCount += other.KeywordCount
	s.LiteralCount += other.LiteralCount
	s.CommentCount += other.CommentCount
	s.LineCount += other.LineCount
	s.CharacterCount += other.CharacterCount
	s.LexingTime += other.LexingTime
}

func (s Stats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Lexer Statistics:\n")
	fmt.Fprintf(&b, "  Total Characters Processed: %d\n", s.CharacterCount)
	fmt.Fprintf(&b, "  Total Tokens Lexed: %d\n", s.TokenCount)
	fmt.Fprintf(&b, "  Identifiers: %d\n", s.IdentifierCount)
	fmt.Fprintf(&b, "  Keywords: %d\n", s.KeywordCount)
	fmt.Fprintf(&b, "  Literals: %d\n", s.LiteralCount)
	fmt.Fprintf(&b, "  Comments: %d\n", s.CommentCount)
	fmt.Fprintf(&b, "  Total Lines: %d\n", s.LineCount)
	fmt.Fprintf(&b, "  Total Lexing Time: %v\n", s.LexingTime)
	fmt.Fprintf(&b, "  Average Token Length: %.2f\n", s.AvgTokenLength())
	return b.String()
}

// Stats возвращает снимок статистики. Число символов добирается до
// размера файла, число строк берётся из продвигаемого счётчика.
func (lx *Lexer) Stats() Stats {
	s := lx.stats
	s.CharacterCount = uint64(len(lx.file.Content))
	s.LineCount = uint64(lx.line)
	return s
}
